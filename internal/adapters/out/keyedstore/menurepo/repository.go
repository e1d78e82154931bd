// Package menurepo serves the catalog from the menu:items hash of a
// KeyedStore. The catalog is reference data: seeded once at startup,
// read-only afterwards.
package menurepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const menuItemsKey = "menu:items"

// Repository implements ports.MenuRepository on a KeyedStore.
type Repository struct {
	store ports.KeyedStore
}

// New creates a repository over the given store.
func New(store ports.KeyedStore) *Repository {
	return &Repository{store: store}
}

// GetAll returns every catalog item, sorted by id for stable listings.
func (r *Repository) GetAll(ctx context.Context) ([]menu.Item, error) {
	raw, err := r.store.HGetAll(ctx, menuItemsKey)
	if err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(raw))
	for id, value := range raw {
		var item menu.Item
		if err := json.Unmarshal([]byte(value), &item); err != nil {
			return nil, fmt.Errorf("unmarshal menu item %s: %w", id, err)
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if len(items[i].ID) != len(items[j].ID) {
			return len(items[i].ID) < len(items[j].ID)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// GetByID retrieves one catalog item.
func (r *Repository) GetByID(ctx context.Context, id string) (*menu.Item, error) {
	raw, ok, err := r.store.HGet(ctx, menuItemsKey, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("menuItemId", id)
	}

	var item menu.Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, fmt.Errorf("unmarshal menu item %s: %w", id, err)
	}
	return &item, nil
}

// GetByCategory filters the catalog by category, case-insensitively.
func (r *Repository) GetByCategory(ctx context.Context, category string) ([]menu.Item, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(all))
	for _, item := range all {
		if strings.EqualFold(item.Category, category) {
			items = append(items, item)
		}
	}
	return items, nil
}

// Categories returns the distinct categories in alphabetical order.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, item := range all {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Seed loads the items into the hash in one batch. Existing entries with
// the same ids are overwritten, so reseeding on restart is harmless.
func (r *Repository) Seed(ctx context.Context, items []menu.Item) error {
	ops := make([]ports.Op, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		raw, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal menu item %s: %w", item.ID, err)
		}
		ops = append(ops, ports.OpHSet(menuItemsKey, item.ID, string(raw)))
	}
	return r.store.Apply(ctx, ops...)
}

package ports

import (
	"context"

	"storefront/internal/core/domain/model/menu"
)

// MenuRepository provides read access to the externally-owned catalog,
// plus the one-time seeding hook used at process startup.
type MenuRepository interface {
	// GetAll returns every catalog item.
	GetAll(ctx context.Context) ([]menu.Item, error)

	// GetByID retrieves a single catalog item.
	// Returns an ObjectNotFoundError for unknown ids.
	GetByID(ctx context.Context, id string) (*menu.Item, error)

	// GetByCategory returns the items whose category matches, case-insensitively.
	GetByCategory(ctx context.Context, category string) ([]menu.Item, error)

	// Categories returns the distinct item categories.
	Categories(ctx context.Context) ([]string, error)

	// Seed loads reference items into the store in one batch.
	Seed(ctx context.Context, items []menu.Item) error
}

// Package orderrepo persists orders and their secondary indices on a
// KeyedStore.
//
// Key layout (shared with the seeded deployment data):
//
//	orders              → hash  { orderId → JSON record }
//	orders:all          → set   { orderId, ... }
//	user:{email}:orders → set   { orderId, ... }
//
// Every mutation that touches the record and an index goes through one
// Apply batch so the indices never disagree with the records.
package orderrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const (
	ordersKey    = "orders"
	allOrdersKey = "orders:all"
)

func ownerKey(email string) string {
	return "user:" + email + ":orders"
}

// Repository implements ports.OrderRepository on a KeyedStore.
type Repository struct {
	store ports.KeyedStore
}

// New creates a repository over the given store.
func New(store ports.KeyedStore) *Repository {
	return &Repository{store: store}
}

// Add persists the record and registers both index memberships in one batch.
// Guest orders (no owner) skip the per-customer index.
func (r *Repository) Add(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", o.ID, err)
	}

	ops := []ports.Op{
		ports.OpHSet(ordersKey, o.ID, string(raw)),
		ports.OpSAdd(allOrdersKey, o.ID),
	}
	if o.UserEmail != "" {
		ops = append(ops, ports.OpSAdd(ownerKey(o.UserEmail), o.ID))
	}

	return r.store.Apply(ctx, ops...)
}

// Get retrieves one order record.
func (r *Repository) Get(ctx context.Context, id string) (*order.Order, error) {
	raw, ok, err := r.store.HGet(ctx, ordersKey, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	var o order.Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return nil, fmt.Errorf("unmarshal order %s: %w", id, err)
	}
	return &o, nil
}

// GetAll returns every live order, in unspecified order.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.getByIndex(ctx, allOrdersKey)
}

// GetByOwner returns the orders in the given customer's index set.
func (r *Repository) GetByOwner(ctx context.Context, email string) ([]*order.Order, error) {
	return r.getByIndex(ctx, ownerKey(email))
}

// UpdateStatus applies the forward-only transition rule and persists the
// updated record. Indices are untouched: a status change never moves an
// order between index sets, so this is a single-key write.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.ApplyStatus(status); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshal order %s: %w", id, err)
	}
	if err := r.store.HSet(ctx, ordersKey, id, string(raw)); err != nil {
		return nil, err
	}

	return o, nil
}

// Delete removes the record and both index memberships in one batch.
// A missing id yields (false, nil), not an error.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	raw, ok, err := r.store.HGet(ctx, ordersKey, id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var o order.Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return false, fmt.Errorf("unmarshal order %s: %w", id, err)
	}

	ops := []ports.Op{
		ports.OpHDel(ordersKey, id),
		ports.OpSRem(allOrdersKey, id),
	}
	if o.UserEmail != "" {
		ops = append(ops, ports.OpSRem(ownerKey(o.UserEmail), id))
	}

	if err := r.store.Apply(ctx, ops...); err != nil {
		return false, err
	}
	return true, nil
}

// Clear wipes every order, the all-orders set, and each per-customer set
// touched by a live order, in one batch.
func (r *Repository) Clear(ctx context.Context) error {
	ids, err := r.store.SMembers(ctx, allOrdersKey)
	if err != nil {
		return err
	}

	ownerKeys := make(map[string]struct{})
	for _, id := range ids {
		raw, ok, err := r.store.HGet(ctx, ordersKey, id)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		var o order.Order
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			return fmt.Errorf("unmarshal order %s: %w", id, err)
		}
		if o.UserEmail != "" {
			ownerKeys[ownerKey(o.UserEmail)] = struct{}{}
		}
	}

	keys := []string{ordersKey, allOrdersKey}
	for key := range ownerKeys {
		keys = append(keys, key)
	}

	return r.store.Apply(ctx, ports.OpDel(keys...))
}

func (r *Repository) getByIndex(ctx context.Context, indexKey string) ([]*order.Order, error) {
	ids, err := r.store.SMembers(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		raw, ok, err := r.store.HGet(ctx, ordersKey, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Index and record can only disagree inside the acknowledged
			// crash window; a dangling member is skipped, not fatal.
			continue
		}

		var o order.Order
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			return nil, fmt.Errorf("unmarshal order %s: %w", id, err)
		}
		orders = append(orders, &o)
	}
	return orders, nil
}

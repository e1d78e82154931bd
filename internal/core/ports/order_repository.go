package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders and their
// secondary indices (the all-orders set and the per-customer sets).
//
// Implementations must keep the indices consistent with the records: an order
// id is a member of the all-orders set iff its record exists, and of a
// customer's set iff the record exists and carries that customer identifier.
// Record and index writes therefore happen in one atomic KeyedStore batch.
type OrderRepository interface {
	// Add persists a new order record and registers it in both indices.
	Add(ctx context.Context, o *order.Order) error

	// Get retrieves an order by id. Returns an ObjectNotFoundError when no
	// record exists. Ownership scoping is the caller's concern.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll returns every live order. Ordering is unspecified; callers sort
	// by createdAt when presentation order matters.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByOwner returns the orders owned by the given customer identifier.
	// An unknown identifier yields an empty slice, not an error.
	GetByOwner(ctx context.Context, email string) ([]*order.Order, error)

	// UpdateStatus validates the transition via the status machine, persists
	// the new status with a fresh updatedAt, and returns the updated record.
	// Returns an ObjectNotFoundError for missing records and an
	// IllegalTransitionError for regressions, leaving the record unchanged.
	UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error)

	// Delete removes the record and both index memberships. Returns false
	// when the id did not exist; that is not an error.
	Delete(ctx context.Context, id string) (bool, error)

	// Clear removes every order and all index entries. Administrative and
	// test-only; must leave no orphaned index members behind.
	Clear(ctx context.Context) error
}

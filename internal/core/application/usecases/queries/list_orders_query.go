package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, either the whole book (administrators)
// or one customer's slice of it.
type ListOrdersQuery struct {
	ownerEmail string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an unscoped listing of every live order.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListOrdersQueryForOwner creates a listing scoped to one customer.
func NewListOrdersQueryForOwner(ownerEmail string) ListOrdersQuery {
	return ListOrdersQuery{
		ownerEmail: ownerEmail,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OwnerEmail returns the owning customer identifier, empty for the
// unscoped listing.
func (q ListOrdersQuery) OwnerEmail() string {
	return q.ownerEmail
}

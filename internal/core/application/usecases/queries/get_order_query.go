// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order, optionally scoped to a requesting
// customer. With a requester set, an order owned by somebody else is reported
// as not found rather than forbidden, so an outsider cannot probe which ids
// exist.
type GetOrderQuery struct {
	orderID        string
	requesterEmail string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an unscoped lookup, used by administrators.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	return NewGetOrderQueryForRequester(orderID, "")
}

// NewGetOrderQueryForRequester creates a lookup scoped to the given customer.
// An empty requesterEmail disables the ownership check.
func NewGetOrderQueryForRequester(orderID, requesterEmail string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetOrderQuery{
		orderID:        orderID,
		requesterEmail: requesterEmail,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// RequesterEmail returns the requesting customer identifier, empty when the
// lookup is unscoped.
func (q GetOrderQuery) RequesterEmail() string {
	return q.requesterEmail
}

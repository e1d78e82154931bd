package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetOrderQueryHandler serves single-order lookups with ownership scoping.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle fetches the order and applies the ownership check. A scoped lookup
// of somebody else's order returns the same ObjectNotFoundError a missing
// order would.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if query.RequesterEmail() != "" && !found.OwnedBy(query.RequesterEmail()) {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return found, nil
}

package queries

import (
	"context"
	"sort"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ListOrdersQueryHandler serves order listings, newest first.
type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle lists the orders visible to the query's scope, sorted by creation
// time descending. An owner with no orders gets an empty slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if query.OwnerEmail() == "" {
		orders, err = h.orderRepo.GetAll(ctx)
	} else {
		orders, err = h.orderRepo.GetByOwner(ctx, query.OwnerEmail())
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

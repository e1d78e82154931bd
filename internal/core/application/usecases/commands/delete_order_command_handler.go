package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles administrative order removal. The
// progression simulator is not touched here: its next tick finds the order
// gone and cancels itself.
type DeleteOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(orderRepo ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orderRepo: orderRepo}
}

// Handle processes the deletion command. Returns an ObjectNotFoundError when
// the order does not exist, so the boundary can answer 404 instead of
// silently succeeding.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	deleted, err := h.orderRepo.Delete(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	return nil
}

package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles status transitions. The repository
// enforces the forward-only rule; this handler adds the best-effort
// status-changed announcement on top.
type UpdateOrderStatusCommandHandler struct {
	orderRepo ports.OrderRepository
	transport ports.NotificationTransport
	logger    *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	orderRepo ports.OrderRepository,
	transport ports.NotificationTransport,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepo: orderRepo,
		transport: transport,
		logger:    logger,
	}
}

// Handle processes the status update command and returns the updated record.
// Returns an ObjectNotFoundError for unknown orders and an
// IllegalTransitionError for regressions; in both cases nothing is persisted
// and nothing is announced.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.orderRepo.UpdateStatus(ctx, cmd.OrderID(), cmd.Status())
	if err != nil {
		return nil, err
	}

	if err = h.transport.Publish(ctx, ports.StatusChangedEvent(updated)); err != nil {
		h.logger.WarnContext(ctx, "failed to publish status-changed event",
			slog.String("order_id", updated.ID),
			slog.String("status", updated.Status.String()),
			slog.Any("error", err))
	}

	return updated, nil
}

package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Resolves selections against the catalog, snapshots names and prices into
// line items, persists the order, announces it, and kicks off the automatic
// status progression.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(orderRepo, menuRepo, transport, simulator, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %.2f", placed.ID, placed.TotalAmount)
type PlaceOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	menuRepo  ports.MenuRepository
	transport ports.NotificationTransport
	simulator ProgressionStarter
	logger    *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	orderRepo ports.OrderRepository,
	menuRepo ports.MenuRepository,
	transport ports.NotificationTransport,
	simulator ProgressionStarter,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		transport: transport,
		simulator: simulator,
		logger:    logger,
	}
}

// Handle processes the order placement command.
//
// Every selection is resolved against the catalog before anything is
// persisted; an unknown menu item id fails the whole order with an
// InvalidReferenceError. Notification delivery is best-effort: a publish
// failure is logged but never fails an already-persisted order.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(cmd.Selections()))
	for _, sel := range cmd.Selections() {
		menuItem, err := h.menuRepo.GetByID(ctx, sel.MenuItemID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewInvalidReferenceError("menuItemId", sel.MenuItemID)
			}
			return nil, err
		}

		lineItem, err := order.NewLineItem(*menuItem, sel.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, lineItem)
	}

	customer, err := order.NewCustomer(cmd.CustomerName(), cmd.CustomerAddress(), cmd.CustomerPhone())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(items, customer, cmd.UserEmail())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = h.transport.Publish(ctx, ports.NewOrderEvent(placed)); err != nil {
		h.logger.WarnContext(ctx, "failed to publish new-order event",
			slog.String("order_id", placed.ID),
			slog.Any("error", err))
	}

	h.simulator.Start(placed.ID)

	return placed, nil
}

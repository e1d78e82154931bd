package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// EventType discriminates order lifecycle events.
type EventType string

const (
	// EventNewOrder announces a freshly placed order; the event carries the
	// full order record.
	EventNewOrder EventType = "new-order"

	// EventStatusChanged announces a status transition; the event carries
	// only the order id, the new status, and the update timestamp.
	EventStatusChanged EventType = "status-changed"
)

// Event is an order lifecycle notification. Exactly one of Order or the
// (OrderID, Status, UpdatedAt) triple is populated, depending on Type.
type Event struct {
	Type      EventType    `json:"type"`
	Order     *order.Order `json:"order,omitempty"`
	OrderID   string       `json:"orderId,omitempty"`
	Status    order.Status `json:"status,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt,omitzero"`
}

// NewOrderEvent builds the announcement for a freshly placed order.
func NewOrderEvent(o *order.Order) Event {
	return Event{Type: EventNewOrder, Order: o}
}

// StatusChangedEvent builds the announcement for a status transition.
func StatusChangedEvent(o *order.Order) Event {
	return Event{
		Type:      EventStatusChanged,
		OrderID:   o.ID,
		Status:    o.Status,
		UpdatedAt: o.UpdatedAt,
	}
}

// NotificationTransport fans order lifecycle events out to interested
// subscribers. The engine only depends on Publish; whether delivery is a
// websocket broadcast, an AMQP fanout, or a no-op (clients poll instead)
// is a deployment wiring concern.
//
// Delivery is best-effort: consumers reconcile against their last observed
// status and must ignore duplicates and regressions, so a lost event is
// repaired by the next one or by a poll.
type NotificationTransport interface {
	Publish(ctx context.Context, event Event) error
}

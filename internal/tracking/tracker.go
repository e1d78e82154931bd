// Package tracking reconciles order lifecycle events against the last
// observed state. Notification delivery is best-effort, so consumers run
// every incoming event — pushed or synthesized from a poll — through a
// Tracker to drop duplicates and stale regressions before acting on it.
package tracking

import (
	"sync"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// Tracker remembers the highest status rank observed per order. It is safe
// for concurrent use by a websocket consumer and a poller at once.
type Tracker struct {
	mu   sync.Mutex
	last map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{last: make(map[string]int)}
}

// Reconcile applies an event against the last observed state and reports
// whether it advances knowledge. Duplicates, regressions, and events with
// unknown statuses are rejected; the caller should ignore them.
//
// A new-order event registers the order at its initial status. A
// status-changed event is accepted only when it moves the order's observed
// rank strictly forward.
func (t *Tracker) Reconcile(event ports.Event) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch event.Type {
	case ports.EventNewOrder:
		if event.Order == nil {
			return false
		}
		if _, known := t.last[event.Order.ID]; known {
			return false
		}
		rank := event.Order.Status.Rank()
		if rank < 0 {
			return false
		}
		t.last[event.Order.ID] = rank
		return true

	case ports.EventStatusChanged:
		rank := event.Status.Rank()
		if rank < 0 {
			return false
		}
		if prev, known := t.last[event.OrderID]; known && rank <= prev {
			return false
		}
		t.last[event.OrderID] = rank
		return true

	default:
		return false
	}
}

// Observed returns the last accepted status for an order.
func (t *Tracker) Observed(orderID string) (order.Status, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rank, known := t.last[orderID]
	if !known {
		return "", false
	}
	return order.Flow()[rank], true
}

// Forget drops an order's observed state, e.g. after its record is deleted.
func (t *Tracker) Forget(orderID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, orderID)
}

package tracking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// Poller is the pull-side fallback for deployments without a push channel:
// it re-fetches a watched order on an interval and synthesizes the
// status-changed events a push transport would have delivered. Events pass
// through a Tracker, so an unchanged status between polls emits nothing.
type Poller struct {
	orderRepo ports.OrderRepository
	tracker   *Tracker
	interval  time.Duration
	sink      func(ports.Event)
	logger    *slog.Logger
}

// NewPoller creates a poller that emits accepted events into sink.
func NewPoller(
	orderRepo ports.OrderRepository,
	tracker *Tracker,
	interval time.Duration,
	sink func(ports.Event),
	logger *slog.Logger,
) *Poller {
	return &Poller{
		orderRepo: orderRepo,
		tracker:   tracker,
		interval:  interval,
		sink:      sink,
		logger:    logger.With("component", "order_poller"),
	}
}

// Watch polls one order until the context is cancelled, the order reaches
// its terminal status, or its record disappears. It blocks; run it in its
// own goroutine. A transient fetch error is skipped and repaired by the
// next poll.
func (p *Poller) Watch(ctx context.Context, orderID string) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		current, err := p.orderRepo.Get(ctx, orderID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				p.tracker.Forget(orderID)
				return
			}
			p.logger.WarnContext(ctx, "poll failed, will retry",
				slog.String("order_id", orderID),
				slog.Any("error", err))
			continue
		}

		event := ports.StatusChangedEvent(current)
		if p.tracker.Reconcile(event) {
			p.sink(event)
		}

		if current.Status.IsTerminal() {
			return
		}
	}
}

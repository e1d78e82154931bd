package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ProgressionSimulator advances placed orders through the status flow on a
// fixed cadence. Every tracked order owns one cron entry; the entry fires
// once per period, moves the order one stage forward through the status
// update handler, and removes itself once the order is delivered or gone.
type ProgressionSimulator struct {
	orderRepo ports.OrderRepository
	handler   commands.UpdateOrderStatusCommandHandler
	period    time.Duration
	logger    *slog.Logger

	cron *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// NewProgressionSimulator creates a simulator that ticks each tracked order
// every period. The cron scheduler rounds periods below one second up to
// one second.
func NewProgressionSimulator(
	orderRepo ports.OrderRepository,
	handler commands.UpdateOrderStatusCommandHandler,
	period time.Duration,
	logger *slog.Logger,
) *ProgressionSimulator {
	return &ProgressionSimulator{
		orderRepo: orderRepo,
		handler:   handler,
		period:    period,
		logger:    logger.With("component", "progression_simulator"),
		cron:      cron.New(cron.WithSeconds()),
		entries:   make(map[string]cron.EntryID),
	}
}

// Run starts the scheduler. Entries added before Run are fired once it is
// running; entries added after join the running scheduler immediately.
func (s *ProgressionSimulator) Run() {
	s.cron.Start()
	s.logger.InfoContext(context.Background(), "progression simulator started",
		slog.Duration("period", s.period))
}

// Shutdown stops the scheduler, waits for in-flight ticks to finish, and
// forgets every tracked order.
func (s *ProgressionSimulator) Shutdown() {
	<-s.cron.Stop().Done()

	s.mu.Lock()
	defer s.mu.Unlock()
	for orderID, entryID := range s.entries {
		s.cron.Remove(entryID)
		delete(s.entries, orderID)
	}
	s.logger.InfoContext(context.Background(), "progression simulator stopped")
}

// Start begins tracking an order. Starting an already-tracked order is a
// no-op, so a retried placement never races two timers on one order.
func (s *ProgressionSimulator) Start(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, tracked := s.entries[orderID]; tracked {
		return
	}

	entryID := s.cron.Schedule(cron.Every(s.period), cron.FuncJob(func() {
		s.tick(orderID)
	}))
	s.entries[orderID] = entryID

	s.logger.Info("tracking order", slog.String("order_id", orderID))
}

// Cancel stops tracking an order. Unknown ids are ignored.
func (s *ProgressionSimulator) Cancel(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(orderID)
}

// CancelAll stops tracking every order, leaving the scheduler running.
func (s *ProgressionSimulator) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for orderID := range s.entries {
		s.cancelLocked(orderID)
	}
}

// Active returns the number of currently tracked orders.
func (s *ProgressionSimulator) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *ProgressionSimulator) cancelLocked(orderID string) {
	entryID, tracked := s.entries[orderID]
	if !tracked {
		return
	}
	s.cron.Remove(entryID)
	delete(s.entries, orderID)
}

// tick advances one order a single stage. Any reason the order cannot move
// forward — deleted, already delivered, or an illegal state — retires the
// order's entry.
func (s *ProgressionSimulator) tick(orderID string) {
	ctx := context.Background()

	current, err := s.orderRepo.Get(ctx, orderID)
	if err != nil {
		s.logger.InfoContext(ctx, "order gone, stopping simulation",
			slog.String("order_id", orderID))
		s.Cancel(orderID)
		return
	}

	next, ok := current.Status.Next()
	if !ok {
		s.Cancel(orderID)
		return
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build status update",
			slog.String("order_id", orderID),
			slog.Any("error", err))
		s.Cancel(orderID)
		return
	}

	updated, err := s.handler.Handle(ctx, cmd)
	if err != nil {
		s.logger.InfoContext(ctx, "status update failed, stopping simulation",
			slog.String("order_id", orderID),
			slog.Any("error", err))
		s.Cancel(orderID)
		return
	}

	if updated.Status.IsTerminal() {
		s.Cancel(orderID)
	}
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, persistence, and
// best-effort notification.
package commands

// ProgressionStarter schedules the automatic status progression for a
// freshly placed order. Implemented by the jobs simulator; commands only
// need the scheduling side, never cancellation.
type ProgressionStarter interface {
	Start(orderID string)
}

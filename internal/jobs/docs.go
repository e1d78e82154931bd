// Package jobs provides scheduled background tasks for the order lifecycle
// engine.
//
// This package implements cron-based scheduling using github.com/robfig/cron/v3.
// Its one job is the ProgressionSimulator, which walks every placed order
// through the status flow on a fixed cadence, standing in for the kitchen
// and courier updates a real deployment would receive.
//
// # Usage
//
//	simulator := jobs.NewProgressionSimulator(orderRepo, updateHandler, 8*time.Second, logger)
//	simulator.Run()
//	defer simulator.Shutdown()
//
//	// one timer per placed order
//	simulator.Start(orderID)
//
// # Scheduling
//
// Each tracked order gets its own cron entry firing once per period. The
// cron scheduler truncates periods to whole seconds with a one second
// minimum, so configured delays below one second are effectively one second.
//
// # Error Handling
//
// A tick that finds its order missing, already delivered, or in an illegal
// state cancels its own entry and stops. Simulation is best-effort by
// nature; nothing is retried.
package jobs

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the worker keeps going in
// its own goroutine until ctx is cancelled or Stop is called. Stop blocks
// until the worker has exited.
//
// Example implementation:
//
//	type MyWorker struct{ job service.ConfigRefreshJob }
//
//	func (w *MyWorker) Run(ctx context.Context) { w.job.Start(ctx, time.Minute) }
//	func (w *MyWorker) Stop()                   { w.job.Stop() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// several workers side by side under one context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks for the whole lifetime of the worker and must return once ctx
// is cancelled. Returning earlier is treated by [Workers] as an unexpected
// stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Package workers manages the desk's background jobs. It defines the Worker
// interface and a Workers aggregate that starts and stops them together.
package workers

import "context"

// Worker is a background job that runs until ctx is cancelled or Stop is
// called.
//
// Run must not block: implementations spawn their own goroutines. Stop must
// wait for them and be safe to call before Run or more than once.
//
// Example implementation:
//
//	type MyWorker struct{ job service.OverdueJob }
//
//	func (w *MyWorker) Run(ctx context.Context) { w.job.Start(ctx, time.Minute) }
//	func (w *MyWorker) Stop()                   { w.job.Stop() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

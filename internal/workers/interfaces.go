// Package workers runs the server's background jobs next to the transport
// servers and stops them with the same context.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
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

// Pinger checks a dependency the server cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter receives the outcome of every health probe.
type HealthReporter interface {
	SetServing(serving bool)
}

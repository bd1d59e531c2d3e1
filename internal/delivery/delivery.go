// Package delivery defines the contract every transport (HTTP, worker) must
// satisfy so the application can start them uniformly.
package delivery

import "context"

// Delivery is a serving surface of the application.
type Delivery interface {
	// Serve blocks, serving until the context is cancelled or the listener
	// fails.
	Serve(ctx context.Context) error
}

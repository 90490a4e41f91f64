// Package delivery defines the contract every serving surface of the
// application implements.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP server, queue
// worker, reconciler). Serve blocks until the surface stops or the
// context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}

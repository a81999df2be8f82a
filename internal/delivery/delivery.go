// Package delivery defines the entry points that expose the application to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	// Serve blocks until the server stops. It returns nil on a graceful shutdown.
	Serve(ctx context.Context) error
}

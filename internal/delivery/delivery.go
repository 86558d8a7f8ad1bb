// Package delivery holds the entry points that expose the use cases:
// the public API server, the Pub/Sub worker and the job scheduler.
package delivery

import "context"

// Delivery is a long-running entry point started by an fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}

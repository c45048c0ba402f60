// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is implemented by every transport server (HTTP, worker) so the
// application entrypoint can start them uniformly.
type Delivery interface {
	// Serve starts the server and blocks until it stops or fails.
	Serve(ctx context.Context) error
}

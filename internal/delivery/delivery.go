// Package delivery defines the contract every inbound adapter (HTTP server,
// background sweeper, worker) fulfills so the application can run them
// uniformly.
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until the
// adapter stops or fails; shutdown is driven through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}

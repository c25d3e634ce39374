// Package delivery holds the inbound adapters of the service.
package delivery

import "context"

// Delivery is a long running inbound adapter such as the HTTP API.
// Serve blocks until the adapter is shut down through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}

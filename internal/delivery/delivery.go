// Package delivery defines the contract for inbound transports.
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the server
// stops; shutdown is driven through the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}

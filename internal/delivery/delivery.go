// Package delivery holds the transports that expose the auth usecase.
package delivery

import "context"

// Delivery is a long-running server started by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}

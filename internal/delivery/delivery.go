// Package delivery defines the servers that expose the application.
package delivery

import "context"

// Delivery is a long-running server started by a binary's fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application. Implementations block in
// Serve until the surface is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}

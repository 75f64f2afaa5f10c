// Package delivery defines the contract every transport-facing component
// satisfies, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, worker, ...).
type Delivery interface {
	Serve(ctx context.Context) error
}

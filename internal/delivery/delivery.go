// Package delivery defines the contract shared by all inbound servers.
package delivery

import "context"

// Delivery is a long-running inbound surface (HTTP API, worker endpoint).
// Implementations are collected into the fx "deliveries" group and served
// concurrently from main; Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}

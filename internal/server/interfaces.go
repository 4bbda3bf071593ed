package server

import (
	"context"
	"net"
)

// Server defines the lifecycle of the HTTP server.
type Server interface {
	// Listen binds the listening socket.
	Listen() error

	// Addr returns the bound address, or nil before Listen.
	Addr() net.Addr

	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns nil after a clean shutdown.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx expires.
	Shutdown(ctx context.Context) error
}

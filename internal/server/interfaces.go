package server

// Server is the lifecycle contract for the transport server managed by this
// package. [RunServer] blocks until a stop signal arrives; [Shutdown] drains
// in-flight requests and releases resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

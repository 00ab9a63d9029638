package server

// Server is the lifecycle of the diagnostics server.
type Server interface {
	// RunServer serves requests and blocks until SIGTERM, SIGINT or SIGQUIT
	// is received or the listener fails.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}

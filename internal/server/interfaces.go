package server

// Server runs the accounts API until the process is told to stop.
type Server interface {
	// RunServer serves requests and blocks until SIGINT, SIGTERM or SIGQUIT
	// arrives or the listener fails.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}

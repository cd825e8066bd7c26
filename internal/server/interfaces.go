package server

// Server serves the resolved site configuration until the process is asked
// to stop.
type Server interface {
	// RunServer listens on the configured address and blocks until SIGINT,
	// SIGTERM or SIGQUIT arrives, then drains in-flight requests.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// for a bounded time.
	Shutdown()
}

package server

// Server is the lifecycle contract of a transport server. RunServer blocks
// until shutdown is requested; Shutdown releases resources.
type Server interface {
	RunServer()
	Shutdown()
}

package server

// Server is a single transport (HTTP API or gRPC health) owned by the
// composite server. RunServer blocks while serving; Shutdown stops accepting
// new requests and returns once in-flight ones are done or the shutdown
// timeout passes.
type Server interface {
	RunServer()
	Shutdown()
}

// Package server runs the review-site transport servers.
//
// It starts the HTTP and gRPC servers enabled by configuration, waits for a
// termination signal and shuts both down gracefully.
package server

// Package http implements the REST transport of the review-site server.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: trace ids, access logging, Prometheus metrics, bearer-token
// authentication and the ownership guard for /api/users/{userID} routes.
// Every failure is written as a JSON {"error": "..."} body whose status comes
// from a single error-to-status table.
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("not authorized: empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not start with the "Bearer " scheme prefix.
	ErrInvalidAuthorizationHeader = errors.New("not authorized: `Authorization` header must use the Bearer scheme")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// "Bearer " prefix but no token after it.
	ErrEmptyToken = errors.New("not authorized: empty token in `Authorization` header")
)

// Request-level errors raised before the service layer is reached.
var (
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

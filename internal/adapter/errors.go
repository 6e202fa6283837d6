package adapter

import "errors"

// Sentinels for non-2xx API responses. The server's {"error"} message is
// wrapped after the sentinel, so errors.Is works and the text stays readable.
var (
	ErrBadRequest   = errors.New("review site rejected the request")
	ErrUnauthorized = errors.New("not authenticated or not the owner")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrServer       = errors.New("review site server error")
)

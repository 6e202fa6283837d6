package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure; the wrapped
	// validator error carries the human readable reason.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike, so callers cannot probe for accounts.
	ErrInvalidCredentials = errors.New("not authorized: invalid username or password")

	ErrInvalidToken        = errors.New("not authorized: invalid token")
	ErrUnknownTokenOwner   = errors.New("not authorized: token owner does not exist")
	ErrNotOwner            = errors.New("not authorized: resource belongs to another user")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)

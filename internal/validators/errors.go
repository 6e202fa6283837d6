package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername = errors.New("username must be between 1 and 50 characters")
	ErrInvalidPassword = errors.New("password must be between 1 and 72 bytes")
	ErrInvalidText     = errors.New("text must be between 1 and 255 characters")

	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidItemID   = errors.New("invalid item id")
	ErrInvalidReviewID = errors.New("invalid review id")
)

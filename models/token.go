package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an identity token: the user id and nothing else.
// No registered claims (exp, iat, iss) are emitted, so tokens never expire.
type Claims struct {
	// UserID is the user identifier the token was issued for.
	UserID string `json:"id"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached copy of the "id" claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "id" claim.
	UserID string `json:"-"`
}

// GetUserID returns the "id" claim of the underlying parsed token.
func (t *Token) GetUserID() (string, error) {
	if t.Token == nil {
		return "", errors.New("token is not parsed")
	}

	claims, ok := t.Token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return "", errors.New("token has no id claim")
	}

	return claims.UserID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

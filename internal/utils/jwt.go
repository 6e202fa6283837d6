package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/review-site/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID.
//
// The payload carries a single "id" claim. No expiry, issuer or issued-at
// claims are emitted, so the token stays valid for as long as the sign key
// does.
//
// Parameters:
//
//	userID  - ID of the user the token is issued for
//	signKey - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if parameters are empty or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(user.UserID, "secret")
func GenerateJWTToken(userID string, signKey string) (models.Token, error) {
	if userID == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &models.Claims{UserID: userID}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its "id" claim.
//
// Validation includes:
//   - Signing method must be HS256
//   - Signature verification using the provided sign key
//   - Strict base64url decoding, so any altered character is rejected
//   - Presence of a non-empty "id" claim
//
// Parameters:
//
//	tokenString  - the raw signed JWT string to validate and parse
//	tokenSignKey - secret key used to verify the token signature
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object and the extracted UserID
//	error        - non-nil if validation fails or the id claim is missing
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret")
//	if err != nil {
//	    // handle invalid token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed := models.Token{Token: token, SignedString: tokenString}
	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting user id from token: %w", err)
	}
	parsed.UserID = userID

	return parsed, nil
}

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenClaims is returned when a token carries no usable subject.
var ErrInvalidTokenClaims = errors.New("invalid token claims")

// TokenClaims are the claims the client reads from verification tokens.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseTokenClaims extracts subject and expiry from a signed JWT without
// verifying its signature. Verification tokens are signed by the enrollment
// service for relying parties; the client only displays their content.
//
// Returns an error if the token cannot be parsed or has no subject.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidTokenClaims
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("token subject: %w", err)
	}
	if sub == "" {
		return TokenClaims{}, ErrInvalidTokenClaims
	}

	result := TokenClaims{Subject: sub}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("token expiry: %w", err)
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}

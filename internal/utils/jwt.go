package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by ParseTokenExpiry when the token has no "exp" claim.
var ErrNoExpiry = errors.New("token has no expiry claim")

// ParseTokenExpiry reads the "exp" claim of a JWT without verifying its
// signature.
//
// The client never holds the server's signing key, so the value is only
// suitable for display. Tokens that are not JWTs return a parse error.
//
// Example usage:
//
//	exp, err := utils.ParseTokenExpiry(rawToken)
//	if err == nil {
//	    log.Info().Time("token_exp", exp).Msg("logged in")
//	}
func ParseTokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading expiry claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

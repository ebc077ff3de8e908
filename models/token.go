// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is the credential issued by the remote service on login.
//
// SignedString is opaque to the client and is sent back verbatim in the
// Authorization header of every update request.
//
// ExpiresAt is filled only when SignedString happens to be a JWT carrying an
// "exp" claim. It is informational: the client never acts on it and relies
// on the server rejecting an expired token instead.
type Token struct {
	// SignedString is the raw token as returned in data.token.
	SignedString string `json:"-"`

	// ExpiresAt is the unverified "exp" claim, zero when unknown.
	ExpiresAt time.Time `json:"-"`
}

// String returns the raw token value.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// IsEmpty reports whether the token carries no value.
func (t Token) IsEmpty() bool {
	return t.SignedString == ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenUser is the public identity of an authenticated user. It is stored in
// the JWT claims and attached to the request context by the authentication
// middleware.
type TokenUser struct {
	Name string `json:"name"`

	UserID string `json:"userId"`

	Role Role `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (t TokenUser) IsAdmin() bool {
	return t.Role == RoleAdmin
}

// Token carries a parsed or freshly issued JWT.
//
// The claims embed [jwt.RegisteredClaims] so the standard validation
// (expiry, issuer) is handled by golang-jwt, while the user payload lives in
// the User field.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// User is the identity carried by the token.
	User TokenUser `json:"user"`

	// SignedString is the compact serialized token, set only on issue.
	SignedString string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}

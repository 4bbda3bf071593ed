// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/go-pooja-site/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TokenUserCtxKey is the context key under which the authentication
// middleware stores the [models.TokenUser] of the caller.
var TokenUserCtxKey = contextKey("tokenUser")

// WithTokenUser returns a copy of ctx carrying user.
func WithTokenUser(ctx context.Context, user models.TokenUser) context.Context {
	return context.WithValue(ctx, TokenUserCtxKey, user)
}

// GetTokenUserFromContext returns the authenticated user stored in ctx.
func GetTokenUserFromContext(ctx context.Context) (models.TokenUser, bool) {
	user, ok := ctx.Value(TokenUserCtxKey).(models.TokenUser)
	return user, ok
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the site's HTTP surface.
//
// [SiteClient] keeps the signed token cookie the server sets on register and
// login in its cookie jar, so later calls to the users API are
// authenticated the same way a browser is. Non-2xx responses are mapped to
// the sentinel errors of this package; the server's {"msg"} text is kept in
// the error string.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pooja-site/models"
)

// SiteClient talks to a running site.
type SiteClient interface {
	// Ping requests the home page and fails unless it answers 200.
	Ping(ctx context.Context) error

	Register(ctx context.Context, req models.RegisterRequest) (models.TokenUser, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenUser, error)
	// Logout replaces the session cookie with the server's logged-out value.
	Logout(ctx context.Context) error

	ShowMe(ctx context.Context) (models.TokenUser, error)
	ListUsers(ctx context.Context) (models.UsersResponse, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.TokenUser, error)
	UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error
}

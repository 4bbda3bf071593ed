// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pooja-site/models"
)

// UserRepository persists registered users. Every backend (Mongo, Postgres,
// SQLite) implements it with identical semantics:
//   - emails are unique, a duplicate yields [ErrEmailAlreadyExists];
//   - a missing user yields [ErrNoUserWasFound];
//   - an id that is not valid for the backend yields [ErrInvalidUserID].
type UserRepository interface {
	// CreateUser stores user, assigning its ID and timestamps.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// CountUsers returns the number of stored users.
	CountUsers(ctx context.Context) (int64, error)

	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// FindUsersByRole lists users with role, passwords left empty.
	FindUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)

	// UpdateUser sets name and email and returns the updated user.
	UpdateUser(ctx context.Context, id, name, email string) (models.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

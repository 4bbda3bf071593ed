// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role of a registered user.
type Role string

const (
	// RoleAdmin is granted to the first account ever registered.
	RoleAdmin Role = "admin"
	// RoleUser is the default role of every other account.
	RoleUser Role = "user"
)

// User is a registered account as it is persisted in the users collection
// (or table, for the SQL backends).
//
// Password always holds the bcrypt hash once the user has been stored; it is
// never serialized to JSON.
type User struct {
	// ID is the Mongo ObjectID in hex form or a UUIDv7 for SQL backends.
	ID string `json:"_id" bson:"_id,omitempty" db:"id"`

	Name string `json:"name" bson:"name" db:"name"`

	Email string `json:"email" bson:"email" db:"email"`

	Password string `json:"-" bson:"password" db:"password"`

	Role Role `json:"role" bson:"role" db:"role"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at" db:"created_at"`

	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at" db:"updated_at"`
}

// TokenUser returns the subset of the user that is embedded into the auth
// token and returned by the auth endpoints.
func (u User) TokenUser() TokenUser {
	return TokenUser{
		Name:   u.Name,
		UserID: u.ID,
		Role:   u.Role,
	}
}

func (u User) TableName() string {
	return "users"
}

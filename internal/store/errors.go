// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvalidUserID is returned when an id cannot address a document of
	// the backend (e.g. not a 24-char hex ObjectID for Mongo).
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrUnsupportedDatabaseURL is returned by Connect for an unknown URL
	// scheme.
	ErrUnsupportedDatabaseURL = errors.New("unsupported database url")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan user row")

	ErrScanningRows = errors.New("failed to scan user rows")
)

// InvalidUserIDError reports the id that could not be used; it matches
// [ErrInvalidUserID] with errors.Is.
type InvalidUserIDError struct {
	ID string
}

func (e *InvalidUserIDError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidUserID, e.ID)
}

func (e *InvalidUserIDError) Is(target error) bool {
	return target == ErrInvalidUserID
}

package service

import "errors"

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrMissingCredentials    = errors.New("email and password are required")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrMissingUserValues     = errors.New("name and email are required")
	ErrMissingPasswordValues = errors.New("old and new password are required")

	// ErrForbidden is returned when an authenticated user reaches for another
	// user's resource without being an admin.
	ErrForbidden = errors.New("not authorized to access this route")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

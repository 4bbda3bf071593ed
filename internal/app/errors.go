package app

import "errors"

var (
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrAlreadyStarted     = errors.New("app has already been started")
)

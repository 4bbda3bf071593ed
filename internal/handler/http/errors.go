// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but carries no token after the scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingToken is returned when neither the signed token cookie nor
	// an Authorization header is present.
	ErrMissingToken = errors.New("authentication token is missing")

	ErrMalformedBody = errors.New("malformed request body")
	ErrBodyTooLarge  = errors.New("request body too large")
)

// APIError is an error with an explicit HTTP status and client message.
// Handlers and middlewares return it for request-level failures; the error
// handler writes Msg as the response body.
type APIError struct {
	Status int
	Msg    string
	Err    error
}

func NewAPIError(status int, msg string, err error) *APIError {
	return &APIError{Status: status, Msg: msg, Err: err}
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func badRequest(msg string, err error) *APIError {
	return NewAPIError(http.StatusBadRequest, msg, err)
}

func unauthenticated(err error) *APIError {
	return NewAPIError(http.StatusUnauthorized, msgAuthenticationInvalid, err)
}

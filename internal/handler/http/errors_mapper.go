package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pooja-site/internal/service"
	"github.com/MKhiriev/go-pooja-site/internal/store"
	"github.com/MKhiriev/go-pooja-site/internal/validators"
)

const (
	msgDefault               = "Something went wrong try again later"
	msgRouteDoesNotExist     = "Route does not exist"
	msgAuthenticationInvalid = "Authentication Invalid"
	msgUnauthorizedRoute     = "Unauthorized to access this route"
	msgDuplicateEmail        = "Duplicate value entered for email field, please choose another value"
	msgNoItemFoundWithID     = "No item found with id : "
)

type errorResponse struct {
	status int
	msg    string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrEmailAlreadyExists, errorResponse{http.StatusBadRequest, "Email already exists"}},
	{service.ErrMissingCredentials, errorResponse{http.StatusBadRequest, "Please provide email and password"}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, "Invalid Credentials"}},
	{service.ErrMissingUserValues, errorResponse{http.StatusBadRequest, "Please provide all values"}},
	{service.ErrMissingPasswordValues, errorResponse{http.StatusBadRequest, "Please provide both values"}},
	{service.ErrForbidden, errorResponse{http.StatusForbidden, "Not authorized to access this route"}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, msgAuthenticationInvalid}},

	{store.ErrEmailAlreadyExists, errorResponse{http.StatusBadRequest, msgDuplicateEmail}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusNotFound, "No user found"}},

	{store.ErrUnsupportedDatabaseURL, errorResponse{http.StatusInternalServerError, msgDefault}},
	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, msgDefault}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, msgDefault}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, msgDefault}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, msgDefault}},
}

// responseFromError maps err to the status and message sent to the client.
// Unknown errors become a 500 with a generic message.
func responseFromError(err error) errorResponse {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return errorResponse{apiErr.Status, apiErr.Msg}
	}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return errorResponse{http.StatusBadRequest, verr.Error()}
	}

	var idErr *store.InvalidUserIDError
	if errors.As(err, &idErr) {
		return errorResponse{http.StatusNotFound, msgNoItemFoundWithID + idErr.ID}
	}

	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}

	return errorResponse{http.StatusInternalServerError, msgDefault}
}

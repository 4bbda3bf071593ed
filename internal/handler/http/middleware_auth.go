package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/utils"
	"github.com/MKhiriev/go-pooja-site/models"
)

const tokenCookieName = "token"

// authenticate requires a valid token, read from the signed token cookie
// or, for API clients, from an "Authorization: Bearer" header. The token's
// user is stored in the request context for the handlers below.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without token")
			h.handleError(w, r, unauthenticated(err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			h.handleError(w, r, unauthenticated(err))
			return
		}

		ctx = utils.WithTokenUser(ctx, token.User)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorizeRoles lets only users holding one of roles through. It must run
// after authenticate.
func (h *Handler) authorizeRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetTokenUserFromContext(r.Context())
			if !ok || !slices.Contains(roles, user.Role) {
				logger.FromRequest(r).Warn().Str("user_id", user.UserID).Str("role", string(user.Role)).Msg("role not allowed")
				h.handleError(w, r, NewAPIError(http.StatusForbidden, msgUnauthorizedRoute, nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenFromRequest(r *http.Request) (string, error) {
	if token := SignedCookies(r)[tokenCookieName]; token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the token from "Authorization: Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pooja-site/internal/utils"
	"github.com/MKhiriev/go-pooja-site/models"
)

const loggedOutCookieValue = "logout"

// attachTokenCookie sets the signed, httpOnly token cookie. It lives as
// long as the token itself and is marked secure in production.
func (h *Handler) attachTokenCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    utils.SignCookieValue(token.String(), h.app.JWTSecret),
		Path:     "/",
		Expires:  time.Now().Add(h.app.TokenDuration),
		HttpOnly: true,
		Secure:   h.app.Env.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearTokenCookie overwrites the token cookie with a placeholder that
// expires immediately.
func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    loggedOutCookieValue,
		Path:     "/",
		Expires:  time.Now(),
		HttpOnly: true,
		Secure:   h.app.Env.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

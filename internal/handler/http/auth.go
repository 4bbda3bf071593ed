package http

import (
	"net/http"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/utils"
	"github.com/MKhiriev/go-pooja-site/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) newAuthRouter() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", h.handle(h.register))
	router.Post("/login", h.handle(h.login))
	router.Get("/logout", h.handle(h.logout))

	return router
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		return err
	}

	if err = h.issueToken(w, r, user.TokenUser()); err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.UserResponse{User: user.TokenUser()}, http.StatusCreated)
	return err
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		return err
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	if err = h.issueToken(w, r, user.TokenUser()); err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.UserResponse{User: user.TokenUser()}, http.StatusOK)
	return err
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) error {
	h.clearTokenCookie(w)

	_, err := utils.WriteJSON(w, models.MessageResponse{Msg: "user logged out!"}, http.StatusOK)
	return err
}

// issueToken creates a token for user and sets it as the auth cookie.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.TokenUser) error {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		return err
	}

	h.attachTokenCookie(w, token)
	return nil
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pooja-site/internal/store"
	"github.com/MKhiriev/go-pooja-site/internal/utils"
	"github.com/MKhiriev/go-pooja-site/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) newUsersRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(h.authenticate)

	router.With(h.authorizeRoles(models.RoleAdmin)).Get("/", h.handle(h.listUsers))
	router.Get("/showMe", h.handle(h.showMe))
	router.Patch("/updateUser", h.handle(h.updateUser))
	router.Patch("/updateUserPassword", h.handle(h.updateUserPassword))
	router.Get("/{id}", h.handle(h.getUser))

	return router
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.UsersResponse{Users: users, Count: len(users)}, http.StatusOK)
	return err
}

func (h *Handler) showMe(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
	return err
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	requester, err := currentUser(r)
	if err != nil {
		return err
	}

	id := chi.URLParam(r, "id")
	user, err := h.services.UserService.GetUser(r.Context(), requester, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return NewAPIError(http.StatusNotFound, "No user with id : "+id, err)
	}
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.SingleUserResponse{User: user}, http.StatusOK)
	return err
}

// updateUser changes name and email and re-issues the token cookie, since
// the token carries the name.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	requester, err := currentUser(r)
	if err != nil {
		return err
	}

	var req models.UpdateUserRequest
	if err = decodeBody(r, &req); err != nil {
		return err
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), requester, req)
	if err != nil {
		return err
	}

	if err = h.issueToken(w, r, user.TokenUser()); err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.UserResponse{User: user.TokenUser()}, http.StatusOK)
	return err
}

func (h *Handler) updateUserPassword(w http.ResponseWriter, r *http.Request) error {
	requester, err := currentUser(r)
	if err != nil {
		return err
	}

	var req models.UpdatePasswordRequest
	if err = decodeBody(r, &req); err != nil {
		return err
	}

	if err = h.services.UserService.UpdatePassword(r.Context(), requester, req); err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.MessageResponse{Msg: "Success! Password Updated."}, http.StatusOK)
	return err
}

func currentUser(r *http.Request) (models.TokenUser, error) {
	user, ok := utils.GetTokenUserFromContext(r.Context())
	if !ok {
		return models.TokenUser{}, unauthenticated(ErrMissingToken)
	}
	return user, nil
}

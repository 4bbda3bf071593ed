package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pooja-site/internal/service"
	"github.com/MKhiriev/go-pooja-site/internal/store"
	"github.com/MKhiriev/go-pooja-site/internal/utils"
	"github.com/MKhiriev/go-pooja-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withToken(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: utils.SignCookieValue(token, testSecret)})
	return req
}

var (
	adminUser = models.TokenUser{Name: "root", UserID: "admin-1", Role: models.RoleAdmin}
	plainUser = models.TokenUser{Name: "jane", UserID: "user-1", Role: models.RoleUser}
)

// ─────────────────────────────────────────────
// authentication on the users router
// ─────────────────────────────────────────────

func TestUsers_RequireToken(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no token", func(*http.Request) {}},
		{"unknown token", func(r *http.Request) { withToken(r, "garbage") }},
		{"unsigned cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "user-token"}) }},
		{"forged cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: utils.SignCookieValue("user-token", "nope")})
		}},
		{"bad header", func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/showMe", nil)
			tc.setup(req)
			rec := serve(newTestHandler().Init(), req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Authentication Invalid", decodeMsg(t, rec))
		})
	}
}

func TestShowMe(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"cookie", func(r *http.Request) { withToken(r, "user-token") }},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer user-token") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/showMe", nil)
			tc.setup(req)
			rec := serve(newTestHandler().Init(), req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, plainUser, decodeUserResponse(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// list
// ─────────────────────────────────────────────

func TestListUsers_Admin(t *testing.T) {
	d := newTestDeps()
	d.users.listUsersFunc = func(context.Context) ([]models.User, error) {
		return []models.User{{ID: "a", Name: "a"}, {ID: "b", Name: "b"}}, nil
	}

	rec := serve(d.handler().Init(), withToken(httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil), "admin-token"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Users, 2)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestListUsers_NotAdmin(t *testing.T) {
	d := newTestDeps()
	d.users.listUsersFunc = func(context.Context) ([]models.User, error) {
		t.Fatal("service must not be called")
		return nil, nil
	}

	rec := serve(d.handler().Init(), withToken(httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil), "user-token"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized to access this route", decodeMsg(t, rec))
}

// ─────────────────────────────────────────────
// get
// ─────────────────────────────────────────────

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "found", id: "user-1", wantStatus: http.StatusOK},
		{name: "missing", id: "ghost", err: store.ErrNoUserWasFound, wantStatus: http.StatusNotFound, wantMsg: "No user with id : ghost"},
		{name: "bad id", id: "zz", err: &store.InvalidUserIDError{ID: "zz"}, wantStatus: http.StatusNotFound, wantMsg: "No item found with id : zz"},
		{name: "foreign", id: "other", err: service.ErrForbidden, wantStatus: http.StatusForbidden, wantMsg: "Not authorized to access this route"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps()
			d.users.getUserFunc = func(_ context.Context, requester models.TokenUser, id string) (models.User, error) {
				assert.Equal(t, plainUser, requester)
				assert.Equal(t, tc.id, id)
				if tc.err != nil {
					return models.User{}, tc.err
				}
				return models.User{ID: id, Name: "jane", Password: "hash"}, nil
			}

			req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/users/"+tc.id, nil), "user-token")
			rec := serve(d.handler().Init(), req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.err != nil {
				assert.Equal(t, tc.wantMsg, decodeMsg(t, rec))
				return
			}

			var resp models.SingleUserResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.id, resp.User.ID)
			assert.NotContains(t, rec.Body.String(), "hash")
		})
	}
}

// ─────────────────────────────────────────────
// update
// ─────────────────────────────────────────────

func TestUpdateUser_Success(t *testing.T) {
	d := newTestDeps()
	d.users.updateUserFunc = func(_ context.Context, requester models.TokenUser, req models.UpdateUserRequest) (models.User, error) {
		assert.Equal(t, plainUser, requester)
		assert.Equal(t, models.UpdateUserRequest{Name: "janet", Email: "janet@example.com"}, req)
		return models.User{ID: requester.UserID, Name: req.Name, Email: req.Email, Role: requester.Role}, nil
	}

	req := withToken(httptest.NewRequest(http.MethodPatch, "/api/v1/users/updateUser",
		strings.NewReader(`{"name":"janet","email":"janet@example.com"}`)), "user-token")
	req.Header.Set("Content-Type", "application/json")
	rec := serve(d.handler().Init(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "janet", decodeUserResponse(t, rec).Name)

	value, ok := utils.UnsignCookieValue(tokenCookie(t, rec).Value, testSecret)
	require.True(t, ok)
	assert.Equal(t, "token-for-user-1", value)
}

func TestUpdateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing values", service.ErrMissingUserValues, http.StatusBadRequest, "Please provide all values"},
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusBadRequest, "Duplicate value entered for email field, please choose another value"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps()
			d.users.updateUserFunc = func(context.Context, models.TokenUser, models.UpdateUserRequest) (models.User, error) {
				return models.User{}, tc.err
			}

			req := withToken(httptest.NewRequest(http.MethodPatch, "/api/v1/users/updateUser", nil), "user-token")
			rec := serve(d.handler().Init(), req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMsg, decodeMsg(t, rec))
		})
	}
}

func TestUpdateUserPassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"success", nil, http.StatusOK, "Success! Password Updated."},
		{"missing", service.ErrMissingPasswordValues, http.StatusBadRequest, "Please provide both values"},
		{"wrong old password", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid Credentials"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps()
			d.users.updatePasswordFunc = func(_ context.Context, requester models.TokenUser, req models.UpdatePasswordRequest) error {
				assert.Equal(t, adminUser, requester)
				assert.Equal(t, models.UpdatePasswordRequest{OldPassword: "old", NewPassword: "newpass"}, req)
				return tc.err
			}

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/updateUserPassword",
				strings.NewReader("oldPassword=old&newPassword=newpass"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := serve(d.handler().Init(), withToken(req, "admin-token"))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMsg, decodeMsg(t, rec))
		})
	}
}

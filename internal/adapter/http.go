package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

type httpSiteClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPSiteClient constructs a [SiteClient] for the site at address. A
// bare host:port is treated as http. A zero timeout means 15 seconds.
func NewHTTPSiteClient(address string, timeout time.Duration, logger *logger.Logger) (SiteClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid site address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// resty keeps cookies in a jar, which carries the session token
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpSiteClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSiteClient) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpSiteClient) Register(ctx context.Context, req models.RegisterRequest) (models.TokenUser, error) {
	var result models.UserResponse
	if err := h.send(ctx, "register", resty.MethodPost, "/api/v1/auth/register", req, &result); err != nil {
		return models.TokenUser{}, err
	}
	return result.User, nil
}

func (h *httpSiteClient) Login(ctx context.Context, req models.LoginRequest) (models.TokenUser, error) {
	var result models.UserResponse
	if err := h.send(ctx, "login", resty.MethodPost, "/api/v1/auth/login", req, &result); err != nil {
		return models.TokenUser{}, err
	}
	return result.User, nil
}

func (h *httpSiteClient) Logout(ctx context.Context) error {
	return h.send(ctx, "logout", resty.MethodGet, "/api/v1/auth/logout", nil, nil)
}

func (h *httpSiteClient) ShowMe(ctx context.Context) (models.TokenUser, error) {
	var result models.UserResponse
	if err := h.send(ctx, "show me", resty.MethodGet, "/api/v1/users/showMe", nil, &result); err != nil {
		return models.TokenUser{}, err
	}
	return result.User, nil
}

func (h *httpSiteClient) ListUsers(ctx context.Context) (models.UsersResponse, error) {
	var result models.UsersResponse
	if err := h.send(ctx, "list users", resty.MethodGet, "/api/v1/users/", nil, &result); err != nil {
		return models.UsersResponse{}, err
	}
	return result, nil
}

func (h *httpSiteClient) GetUser(ctx context.Context, id string) (models.User, error) {
	var result models.SingleUserResponse
	if err := h.send(ctx, "get user", resty.MethodGet, "/api/v1/users/"+url.PathEscape(id), nil, &result); err != nil {
		return models.User{}, err
	}
	return result.User, nil
}

func (h *httpSiteClient) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.TokenUser, error) {
	var result models.UserResponse
	if err := h.send(ctx, "update user", resty.MethodPatch, "/api/v1/users/updateUser", req, &result); err != nil {
		return models.TokenUser{}, err
	}
	return result.User, nil
}

func (h *httpSiteClient) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	return h.send(ctx, "update password", resty.MethodPatch, "/api/v1/users/updateUserPassword", req, nil)
}

// send performs one API call. body is sent as JSON when non-nil and the
// response is decoded into result when non-nil.
func (h *httpSiteClient) send(ctx context.Context, op, method, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("site request failed")
		return err
	}
	return nil
}

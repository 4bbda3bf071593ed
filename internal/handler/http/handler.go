package http

import (
	"net/http"

	"github.com/MKhiriev/go-pooja-site/internal/config"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/service"
)

// Renderer renders a named page template.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

type Handler struct {
	services *service.Services
	renderer Renderer

	app    config.App
	server config.Server
	web    config.Web

	// authRouter and usersRouter are mounted under /api/v1; nil means the
	// built-in routers.
	authRouter  http.Handler
	usersRouter http.Handler

	logger *logger.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithAuthRouter replaces the router mounted at /api/v1/auth.
func WithAuthRouter(router http.Handler) Option {
	return func(h *Handler) {
		h.authRouter = router
	}
}

// WithUsersRouter replaces the router mounted at /api/v1/users.
func WithUsersRouter(router http.Handler) Option {
	return func(h *Handler) {
		h.usersRouter = router
	}
}

func NewHandler(services *service.Services, renderer Renderer, cfg config.StructuredConfig, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		renderer: renderer,
		app:      cfg.App,
		server:   cfg.Server,
		web:      cfg.Web,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}

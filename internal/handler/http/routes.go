package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	authMountPath  = "/api/v1/auth"
	usersMountPath = "/api/v1/users"
)

// Init builds the router. Middleware order is part of the contract: trace
// id, access log, recovery, cookies, CORS, form body, JSON body, static
// files, then routes, then the not-found fallback.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	router.Use(h.withCookies)
	router.Use(h.withCORS())
	router.Use(h.withURLEncoded)
	router.Use(h.withJSON)
	router.Use(h.withStatic)
	router.Use(middleware.GetHead)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	for _, p := range pages {
		router.Get(p.path, h.handle(h.page(p.template)))
	}

	router.Mount(authMountPath, h.mountable(h.authRouter, h.newAuthRouter))
	router.Mount(usersMountPath, h.mountable(h.usersRouter, h.newUsersRouter))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

// mountable returns custom if set, otherwise a built-in router that
// answers unknown paths and methods with the site's not-found response.
func (h *Handler) mountable(custom http.Handler, builtin func() chi.Router) http.Handler {
	if custom != nil {
		return custom
	}

	router := builtin()
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)
	return router
}

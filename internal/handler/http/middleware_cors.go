package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS returns the CORS middleware. With no configured origins every
// origin is allowed; preflight requests are answered here and never reach
// the routes.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.web.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
		// credentials may only be allowed for an explicit origin list
		AllowCredentials: len(h.web.CORSOrigins) > 0,
	})
}

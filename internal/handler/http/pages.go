package http

import (
	"net/http"
)

// pages maps every rendered route onto its template.
var pages = []struct {
	path     string
	template string
}{
	{"/", "index"},
	{"/contact", "contact"},
	{"/about", "about"},
	{"/poojas", "poojas"},
	{"/login", "login"},
	{"/register", "register"},
}

// PageData is what every page template receives.
type PageData struct {
	// Path is the request path, used to highlight the current menu entry.
	Path string
}

func (h *Handler) page(name string) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		return h.renderer.Render(w, http.StatusOK, name, PageData{Path: r.URL.Path})
	}
}

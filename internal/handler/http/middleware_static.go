package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
)

const indexFile = "index.html"

// withStatic serves files from the public directory for GET and HEAD
// requests. A path that names no regular file (or a dotfile) falls through
// to the next handler. A directory is served only through its index.html;
// it is never listed.
func (h *Handler) withStatic(next http.Handler) http.Handler {
	root := h.web.PublicDir

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if root == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			next.ServeHTTP(w, r)
			return
		}

		file, ok := resolveStatic(root, r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		f, err := os.Open(file)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("file", file).Msg("serving static file")
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	})
}

// resolveStatic maps a URL path onto a regular file below root.
func resolveStatic(root, urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)

	for _, segment := range strings.Split(clean, "/") {
		if strings.HasPrefix(segment, ".") {
			return "", false
		}
	}

	file := filepath.Join(root, filepath.FromSlash(clean))

	info, err := os.Stat(file)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		file = filepath.Join(file, indexFile)
		if info, err = os.Stat(file); err != nil || info.IsDir() {
			return "", false
		}
	}
	if !info.Mode().IsRegular() {
		return "", false
	}

	return file, true
}

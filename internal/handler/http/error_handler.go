package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/utils"
	"github.com/MKhiriev/go-pooja-site/models"
)

// handlerFunc is an http.HandlerFunc that reports failure by returning an
// error instead of writing it.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc. A returned error or a panic is
// passed to the error handler, so no handler writes its own error bodies.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				h.handleError(w, r, panicError(rvr))
			}
		}()

		if err := fn(w, r); err != nil {
			h.handleError(w, r, err)
		}
	}
}

// handleError is the single place where request errors become responses.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, models.MessageResponse{Msg: resp.msg}, resp.status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

// notFound answers any request no route or static file claimed.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(msgRouteDoesNotExist))
}

func panicError(rvr any) error {
	if err, ok := rvr.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", rvr)
}

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
)

// withRecovery turns a panic anywhere below it into a 500 from the error
// handler. It sits inside withLogging so a recovered request still gets its
// access log line with the 500.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.FromRequest(r).Error().
					Interface("panic", rvr).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")

				h.handleError(w, r, panicError(rvr))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

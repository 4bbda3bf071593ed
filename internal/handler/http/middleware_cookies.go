package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/utils"
)

// withCookies parses the Cookie header into the request context.
//
// Values carrying the "s:" prefix are verified against the JWT secret: a
// good signature puts the unsigned value into [SignedCookies], a bad one
// drops the cookie. Everything else lands in [Cookies]. The middleware never
// rejects a request.
func (h *Handler) withCookies(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		plain, signed, rejected := parseCookies(r.Cookies(), h.app.JWTSecret)

		if rejected > 0 {
			logger.FromRequest(r).Debug().Int("dropped", rejected).Msg("cookies with a bad signature ignored")
		}

		next.ServeHTTP(w, r.WithContext(withCookieMaps(r.Context(), plain, signed)))
	})
}

// parseCookies also reports how many signed values failed verification.
func parseCookies(cookies []*http.Cookie, secret string) (plain, signed map[string]string, rejected int) {
	plain = make(map[string]string, len(cookies))
	signed = make(map[string]string)

	for _, c := range cookies {
		value := decodeCookieValue(c.Value)

		if !utils.IsSignedCookieValue(value) || secret == "" {
			// first occurrence wins, as in most cookie parsers
			if _, seen := plain[c.Name]; !seen {
				plain[c.Name] = value
			}
			continue
		}

		unsigned, ok := utils.UnsignCookieValue(value, secret)
		if !ok {
			rejected++
			continue
		}
		if _, seen := signed[c.Name]; !seen {
			signed[c.Name] = unsigned
		}
	}

	return plain, signed, rejected
}

// decodeCookieValue undoes the percent-encoding browsers' JS clients (and
// Express) apply to cookie values. Values that are not valid escapes are
// kept verbatim.
func decodeCookieValue(v string) string {
	if !strings.Contains(v, "%") {
		return v
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return v
	}
	return decoded
}

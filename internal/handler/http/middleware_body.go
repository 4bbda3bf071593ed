package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// maxBodyBytes caps what the body parsers read.
const maxBodyBytes = 100 << 10

const (
	formContentType = "application/x-www-form-urlencoded"
	jsonContentType = "application/json"
)

// withURLEncoded parses application/x-www-form-urlencoded bodies into a
// map[string]any (single values as strings, repeated keys as lists).
func (h *Handler) withURLEncoded(next http.Handler) http.Handler {
	return h.bodyParser(formContentType, parseForm, next)
}

// withJSON parses application/json bodies. Only objects and arrays are
// accepted; an empty body counts as an empty object.
func (h *Handler) withJSON(next http.Handler) http.Handler {
	return h.bodyParser(jsonContentType, parseJSON, next)
}

func (h *Handler) bodyParser(contentType string, parse func([]byte) (any, error), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasBody(r) || !hasContentType(r, contentType) || r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.handleError(w, r, NewAPIError(http.StatusRequestEntityTooLarge, "Request entity too large", ErrBodyTooLarge))
				return
			}
			h.handleError(w, r, badRequest("Invalid request body", err))
			return
		}

		body, err := parse(raw)
		if err != nil {
			h.handleError(w, r, badRequest("Invalid request body", errors.Join(ErrMalformedBody, err)))
			return
		}

		// downstream handlers may still read the raw body
		r.Body = io.NopCloser(bytes.NewReader(raw))

		next.ServeHTTP(w, r.WithContext(withBody(r.Context(), body)))
	})
}

func hasContentType(r *http.Request, want string) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, want)
}

func parseForm(raw []byte) (any, error) {
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, err
	}

	body := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 1 {
			body[key] = vals[0]
			continue
		}
		list := make([]any, len(vals))
		for i, v := range vals {
			list[i] = v
		}
		body[key] = list
	}
	return body, nil
}

func parseJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}

	// strict: only objects and arrays
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, errors.New("JSON body must be an object or an array")
	}

	var body any
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return nil, err
	}
	return body, nil
}

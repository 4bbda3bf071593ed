package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bodyCapture struct {
	called bool
	body   any
	raw    string
	parsed bool
}

func (c *bodyCapture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.body = Body(r)
		c.parsed = hasBody(r)
		raw, _ := io.ReadAll(r.Body)
		c.raw = string(raw)
	})
}

func runBodyParsers(h *Handler, next http.Handler, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.withURLEncoded(h.withJSON(next)).ServeHTTP(rec, req)
	return rec
}

func TestBodyParsers(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantBody    any
		wantParsed  bool
	}{
		{
			name:        "json object",
			contentType: "application/json",
			body:        `{"email":"a@b.co","n":1}`,
			wantBody:    map[string]any{"email": "a@b.co", "n": float64(1)},
			wantParsed:  true,
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			body:        `{"a":"b"}`,
			wantBody:    map[string]any{"a": "b"},
			wantParsed:  true,
		},
		{
			name:        "json array",
			contentType: "application/json",
			body:        `[1,"two"]`,
			wantBody:    []any{float64(1), "two"},
			wantParsed:  true,
		},
		{
			name:        "empty json",
			contentType: "application/json",
			body:        "  ",
			wantBody:    map[string]any{},
			wantParsed:  true,
		},
		{
			name:        "form",
			contentType: "application/x-www-form-urlencoded",
			body:        "name=jane+doe&tag=a&tag=b",
			wantBody:    map[string]any{"name": "jane doe", "tag": []any{"a", "b"}},
			wantParsed:  true,
		},
		{
			name:        "other content type untouched",
			contentType: "text/plain",
			body:        "hello",
			wantBody:    map[string]any{},
		},
		{
			name:     "no content type",
			body:     `{"a":1}`,
			wantBody: map[string]any{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			capture := &bodyCapture{}
			rec := runBodyParsers(newTestHandler(), capture.handler(), tc.contentType, tc.body)

			require.True(t, capture.called)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.wantBody, capture.body)
			assert.Equal(t, tc.wantParsed, capture.parsed)
			// the raw body stays readable either way
			assert.Equal(t, tc.body, capture.raw)
		})
	}
}

func TestBodyParsers_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantMsg     string
	}{
		{"malformed json", "application/json", `{"a":`, http.StatusBadRequest, "Invalid request body"},
		{"json primitive", "application/json", `"text"`, http.StatusBadRequest, "Invalid request body"},
		{"malformed form", "application/x-www-form-urlencoded", "a=%zz", http.StatusBadRequest, "Invalid request body"},
		{"too large", "application/json", `{"a":"` + strings.Repeat("x", maxBodyBytes) + `"}`, http.StatusRequestEntityTooLarge, "Request entity too large"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			capture := &bodyCapture{}
			rec := runBodyParsers(newTestHandler(), capture.handler(), tc.contentType, tc.body)

			assert.False(t, capture.called)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMsg, decodeMsg(t, rec))
		})
	}
}

func TestDecodeBody(t *testing.T) {
	type target struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(withBody(req.Context(), map[string]any{"name": "jane", "extra": true}))

	var dst target
	require.NoError(t, decodeBody(req, &dst))
	assert.Equal(t, "jane", dst.Name)

	req = req.WithContext(withBody(req.Context(), map[string]any{"name": 42}))
	err := decodeBody(req, &dst)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

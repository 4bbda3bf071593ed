package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pooja-site/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestHandle_ReturnsNothingOnSuccess(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()

	h.handle(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		return nil
	}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()

	h.handle(func(http.ResponseWriter, *http.Request) error {
		return badRequest("Please provide all values", nil)
	}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.JSONContentType, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"msg":"Please provide all values"}`, rec.Body.String())
}

func TestHandle_Panic(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string", "boom"},
		{"error", assert.AnError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler()
			rec := httptest.NewRecorder()

			h.handle(func(http.ResponseWriter, *http.Request) error {
				panic(tc.value)
			}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, msgDefault, decodeMsg(t, rec))
		})
	}
}

func TestHandle_AbortHandlerPropagates(t *testing.T) {
	h := newTestHandler()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.handle(func(http.ResponseWriter, *http.Request) error {
			panic(http.ErrAbortHandler)
		}).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithRecovery(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()

	h.withRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("middleware exploded")
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgDefault, decodeMsg(t, rec))
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestHandler().notFound(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Route does not exist", rec.Body.String())
}

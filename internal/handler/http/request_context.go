package http

import (
	"context"
	"encoding/json"
	"net/http"
)

type ctxKey int

const (
	cookiesCtxKey ctxKey = iota
	signedCookiesCtxKey
	bodyCtxKey
)

// Cookies returns the unsigned cookies of r as parsed by the cookie
// middleware. The map is never nil after the middleware ran.
func Cookies(r *http.Request) map[string]string {
	m, _ := r.Context().Value(cookiesCtxKey).(map[string]string)
	return m
}

// SignedCookies returns the cookies of r whose signature verified, with the
// signature stripped.
func SignedCookies(r *http.Request) map[string]string {
	m, _ := r.Context().Value(signedCookiesCtxKey).(map[string]string)
	return m
}

// Body returns the parsed request body: map[string]any for form and JSON
// objects, []any for a JSON array. It is an empty map when no parser
// claimed the request.
func Body(r *http.Request) any {
	if pb, ok := r.Context().Value(bodyCtxKey).(parsedBody); ok && pb.value != nil {
		return pb.value
	}
	return map[string]any{}
}

func withCookieMaps(ctx context.Context, plain, signed map[string]string) context.Context {
	ctx = context.WithValue(ctx, cookiesCtxKey, plain)
	return context.WithValue(ctx, signedCookiesCtxKey, signed)
}

func withBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, bodyCtxKey, parsedBody{value: body})
}

func hasBody(r *http.Request) bool {
	_, parsed := r.Context().Value(bodyCtxKey).(parsedBody)
	return parsed
}

// parsedBody marks a body a parser has already consumed.
type parsedBody struct {
	value any
}

// decodeBody copies the parsed body into dst, whatever parser produced it.
func decodeBody(r *http.Request, dst any) error {
	data, err := json.Marshal(Body(r))
	if err != nil {
		return badRequest("Invalid request body", err)
	}
	if err = json.Unmarshal(data, dst); err != nil {
		return badRequest("Invalid request body", err)
	}
	return nil
}

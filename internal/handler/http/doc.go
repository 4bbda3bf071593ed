// Package http implements the HTTP transport layer of the site.
//
// It wires the middleware pipeline (tracing, access logging, cookie parsing,
// CORS, body parsing, static files), the rendered pages, and the auth and
// users JSON routers. Every handler returns an error; a single error
// boundary turns errors and panics into the JSON error response.
package http

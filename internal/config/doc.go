// Package config loads the application configuration.
//
// Values come from several layers that are merged in order, the first
// non-zero value winning: the process environment (optionally seeded from a
// local .env file outside production), command-line flags, an optional JSON
// file and finally built-in defaults.
package config

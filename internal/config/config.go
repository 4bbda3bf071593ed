// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// App, Storage and Server have no prefix so the historical variable names
// (NODE_ENV, JWT_SECRET, MONGO_URL, PORT) keep working.
type StructuredConfig struct {
	// App holds the runtime mode and token settings.
	App App

	// Storage holds the database connection settings.
	Storage Storage

	// Server holds the listener and timeout settings.
	Server Server

	// Web holds the locations of templates and static assets and the CORS
	// policy.
	Web Web `envPrefix:"WEB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvLoaded reports whether a local .env file was read during load.
	DotEnvLoaded bool `json:"-"`
}

// Environment is the runtime mode, read from NODE_ENV.
type Environment string

const (
	EnvProduction  Environment = "production"
	EnvDevelopment Environment = "development"
)

// IsProduction reports whether the process runs in production mode.
func (e Environment) IsProduction() bool {
	return e == EnvProduction
}

type App struct {
	// Env gates .env loading, template caching and secure cookies.
	Env Environment `env:"NODE_ENV"`

	// JWTSecret signs both the auth token and the cookies carrying it.
	JWTSecret string `env:"JWT_SECRET"`

	// TokenDuration is the lifetime of issued tokens and auth cookies.
	TokenDuration time.Duration `env:"JWT_LIFETIME"`

	// TokenIssuer is written into and required from every token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL"`
}

type Storage struct {
	DB DB
}

type DB struct {
	// URL selects the backend by scheme: mongodb, mongodb+srv, postgres,
	// postgresql, sqlite or file.
	URL string `env:"MONGO_URL"`

	// Name overrides the Mongo database name taken from the URL path.
	Name string `env:"STORAGE_DB_NAME"`
}

type Server struct {
	Port int `env:"PORT"`

	// RequestTimeout bounds handler execution. Zero disables the timeout.
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// Address returns the listen address for Port.
func (s Server) Address() string {
	return ":" + strconv.Itoa(s.Port)
}

type Web struct {
	ViewsDir string `env:"VIEWS_DIR"`

	PublicDir string `env:"PUBLIC_DIR"`

	// CORSOrigins restricts allowed origins; empty allows every origin.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// GetStructuredConfig builds the configuration from all sources. flags holds
// the values bound by [AddFlags]; it may be nil.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}

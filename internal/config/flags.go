package config

import (
	"github.com/spf13/pflag"
)

// AddFlags registers the configuration flags on fs and returns the struct
// they are bound to. The struct is filled in when fs is parsed and is meant
// to be passed to [GetStructuredConfig].
//
// Flags:
//
//	--env              runtime mode, used when NODE_ENV is unset
//	--jwt-secret       token and cookie signing key
//	--jwt-lifetime     token lifetime (e.g. "24h")
//	--token-issuer     token issuer name
//	-d, --db-url       database URL
//	--db-name          Mongo database name
//	-p, --port         listen port
//	--request-timeout  handler timeout (e.g. "30s")
//	--shutdown-timeout graceful shutdown timeout
//	--views            templates directory
//	--public           static assets directory
//	--cors-origin      allowed CORS origin, repeatable
//	--log-level        zerolog level
//	-c, --config       JSON config file path
func AddFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVar((*string)(&cfg.App.Env), "env", "", "Runtime mode (development|production)")
	fs.StringVar(&cfg.App.JWTSecret, "jwt-secret", "", "Token and cookie signing key")
	fs.DurationVar(&cfg.App.TokenDuration, "jwt-lifetime", 0, "Token lifetime (e.g., 24h)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	fs.StringVarP(&cfg.Storage.DB.URL, "db-url", "d", "", "Database URL")
	fs.StringVar(&cfg.Storage.DB.Name, "db-name", "", "Mongo database name")

	fs.IntVarP(&cfg.Server.Port, "port", "p", 0, "Listen port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	fs.StringVar(&cfg.Web.ViewsDir, "views", "", "Templates directory")
	fs.StringVar(&cfg.Web.PublicDir, "public", "", "Static assets directory")
	fs.StringSliceVar(&cfg.Web.CORSOrigins, "cors-origin", nil, "Allowed CORS origin (repeatable)")

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}

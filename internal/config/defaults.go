package config

import "time"

const (
	DefaultPort            = 4000
	DefaultTokenIssuer     = "go-pooja-site"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultShutdownTimeout = 5 * time.Second
	DefaultViewsDir        = "web/views"
	DefaultPublicDir       = "web/public"
	DefaultDotEnvFile      = ".env"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:           EnvDevelopment,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Web: Web{
			ViewsDir:  DefaultViewsDir,
			PublicDir: DefaultPublicDir,
		},
	}
}

// defaultLogLevel depends on the final environment, so it is resolved after
// merging rather than in [defaults].
func defaultLogLevel(env Environment) string {
	if env.IsProduction() {
		return "info"
	}
	return "debug"
}

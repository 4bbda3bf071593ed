package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pooja-site/internal/config"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
)

// Backend identifies the database behind a [Storages].
type Backend string

const (
	BackendMongo    Backend = "mongo"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Storages is the process-wide database handle: the open connection and the
// repositories built on it. It is safe for concurrent use.
type Storages struct {
	UserRepository UserRepository

	Backend Backend

	close   func(ctx context.Context) error
	migrate func(ctx context.Context) error
}

// ParseBackend selects the backend from the scheme of a database URL.
func ParseBackend(rawURL string) (Backend, error) {
	scheme, _, ok := strings.Cut(rawURL, ":")
	if !ok || scheme == "" {
		return "", fmt.Errorf("%w: %q has no scheme", ErrUnsupportedDatabaseURL, redact(rawURL))
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "sqlite", "file":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedDatabaseURL, scheme)
	}
}

// Connect makes a single attempt to open and verify the database described by
// cfg. It does not retry; the caller decides what a failure means.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	backend, err := ParseBackend(cfg.URL)
	if err != nil {
		return nil, err
	}

	log.Info().Str("backend", string(backend)).Str("url", redact(cfg.URL)).Msg("connecting to database")

	switch backend {
	case BackendMongo:
		return newMongoStorages(ctx, cfg, log)
	case BackendPostgres:
		return newSQLStorages(ctx, NewConnectPostgres, cfg.URL, log)
	default:
		return newSQLStorages(ctx, NewConnectSQLite, sqliteDSN(cfg.URL), log)
	}
}

// Migrate brings the schema up to date. It is a no-op for Mongo, whose only
// schema element (the unique email index) is ensured on connect.
func (s *Storages) Migrate(ctx context.Context) error {
	if s.migrate == nil {
		return nil
	}
	return s.migrate(ctx)
}

// Close releases the connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// redact hides the password of a database URL for logging.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}
	return u.Redacted()
}

package store

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/migrations"
	_ "github.com/mattn/go-sqlite3"
)

func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := openSQL(ctx, "sqlite3", dsn, "NewConnectSQLite", log)
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers; one connection avoids "database is locked".
	conn.SetMaxOpenConns(1)

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}, nil
}

// sqliteDSN turns "sqlite://path/to.db" into a go-sqlite3 DSN. "file:" URIs
// are understood by the driver and passed through.
func sqliteDSN(rawURL string) string {
	if rest, ok := strings.CutPrefix(rawURL, "sqlite://"); ok {
		return rest
	}
	return rawURL
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/migrations"
)

// DB is an open SQL connection together with the dialect specifics the
// repositories need: goose dialect, squirrel placeholder format and error
// classification.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// sqlConnector opens a DB for a dialect-specific DSN.
type sqlConnector func(ctx context.Context, dsn string, log *logger.Logger) (*DB, error)

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect, db.logger)
}

func newSQLStorages(ctx context.Context, connect sqlConnector, dsn string, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		log.Debug().Err(err).Str("func", "newSQLStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	backend := BackendPostgres
	if db.dialect == migrations.DialectSQLite {
		backend = BackendSQLite
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		Backend:        backend,
		close: func(context.Context) error {
			return db.Close()
		},
		migrate: db.Migrate,
	}, nil
}

func openSQL(ctx context.Context, driver, dsn, funcName string, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Debug().Err(err).Str("func", funcName).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Debug().Err(err).Str("func", funcName).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}

	log.Info().Str("func", funcName).Msg("connected to database successfully")
	return conn, nil
}

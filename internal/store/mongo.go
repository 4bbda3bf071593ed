package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pooja-site/internal/config"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	// defaultMongoDatabase is used when neither the URL path nor the config
	// names a database.
	defaultMongoDatabase = "test"

	usersCollection = "users"
)

// NewConnectMongo opens a client for cfg.URL and pings the primary.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URL))
	if err != nil {
		log.Debug().Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Debug().Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = mongoDatabaseName(cfg.URL)
	}

	log.Info().Str("func", "NewConnectMongo").Str("database", name).Msg("connected to database successfully")

	return client.Database(name), nil
}

func newMongoStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectMongo(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	users := db.Collection(usersCollection)
	if err := ensureUserIndexes(ctx, users); err != nil {
		_ = db.Client().Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}

	return &Storages{
		UserRepository: NewMongoUserRepository(users, log),
		Backend:        BackendMongo,
		close: func(ctx context.Context) error {
			return db.Client().Disconnect(ctx)
		},
	}, nil
}

func ensureUserIndexes(ctx context.Context, users *mongo.Collection) error {
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("error creating users email index: %w", err)
	}
	return nil
}

// mongoDatabaseName returns the database named in the URL path, or the
// driver's default database.
func mongoDatabaseName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultMongoDatabase
	}

	name := strings.Trim(u.Path, "/")
	if name == "" {
		return defaultMongoDatabase
	}
	return name
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// userDocument is the BSON shape of a user. The id is a native ObjectID,
// while [models.User] carries its hex form.
type userDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password,omitempty"`
	Role      models.Role   `bson:"role"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		Role:      d.Role,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type mongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

func NewMongoUserRepository(users *mongo.Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		users:  users,
		logger: logger,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	doc := userDocument{
		ID:        bson.NewObjectID(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		Role:      user.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) CountUsers(ctx context.Context) (int64, error) {
	count, err := r.users.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	return count, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.User{}, err
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *mongoUserRepository) FindUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetProjection(bson.D{{Key: "password", Value: 0}}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.users.Find(ctx, bson.D{{Key: "role", Value: role}}, opts)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.FindUsersByRole").Msg("error querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.FindUsersByRole").Msg("error decoding users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}
	return users, nil
}

func (r *mongoUserRepository) UpdateUser(ctx context.Context, id, name, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	oid, err := parseObjectID(id)
	if err != nil {
		return models.User{}, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "email", Value: email},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	var doc userDocument
	err = r.users.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.UpdateUser").Msg("error updating user")
		return models.User{}, mongoError(err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: passwordHash},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	res, err := r.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoUserWasFound
	}
	return nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.D) (models.User, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		return models.User{}, mongoError(err)
	}
	return doc.toModel(), nil
}

func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, &InvalidUserIDError{ID: id}
	}
	return oid, nil
}

// mongoError translates driver errors into store sentinels.
func mongoError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNoUserWasFound
	case mongo.IsDuplicateKeyError(err):
		return ErrEmailAlreadyExists
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

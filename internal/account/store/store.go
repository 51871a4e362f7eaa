package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linhares06/expensetracker-app/internal/account"
	"github.com/linhares06/expensetracker-app/internal/database"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection(database.Collection)}
}

// Insert creates the user's document. The expense and category lists are
// not written here; they materialize on the first push.
func (s *Store) Insert(ctx context.Context, user *account.User) error {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return account.ErrUsernameTaken
		}

		return fmt.Errorf("inserting user: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return nil
}

func (s *Store) ByUsername(ctx context.Context, username string) (*account.User, error) {
	var user account.User

	err := s.col.FindOne(ctx,
		bson.M{"username": username},
		options.FindOne().SetProjection(bson.M{"username": 1, "password": 1}),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &user, nil
}

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, fmt.Errorf("counting users named %q: %w", username, err)
	}

	return count > 0, nil
}

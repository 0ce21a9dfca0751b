package mongodb

import (
	"context"
	"errors"
	"fmt"

	entity "disaster-alert/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository reads and writes account records. The same implementation
// serves both the user and the admin collection.
type UserRepository interface {
	// GetByEmail returns nil, nil when no record matches.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

type userRepository struct {
	store      *Store
	collection *mongo.Collection
}

func NewUserRepository(store *Store, collection string) UserRepository {
	return &userRepository{
		store:      store,
		collection: store.db.Collection(collection),
	}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user in %s: %w", r.collection.Name(), err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return wrapWriteError("failed to insert user to "+r.collection.Name(), err)
	}
	return nil
}

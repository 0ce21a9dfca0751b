package mongodb

import (
	"context"
	"fmt"

	entity "disaster-alert/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByAdmin(ctx context.Context, email string) ([]entity.Notification, error)
	ListByLocation(ctx context.Context, location string) ([]entity.Notification, error)
}

type notificationRepository struct {
	store      *Store
	collection *mongo.Collection
}

func NewNotificationRepository(store *Store) NotificationRepository {
	return &notificationRepository{
		store:      store,
		collection: store.db.Collection(CollectionNotifications),
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, n); err != nil {
		return wrapWriteError("failed to insert notification to Mongo", err)
	}
	return nil
}

func (r *notificationRepository) ListByAdmin(ctx context.Context, email string) ([]entity.Notification, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *notificationRepository) ListByLocation(ctx context.Context, location string) ([]entity.Notification, error) {
	return r.find(ctx, bson.M{"location": location})
}

// find returns matches in natural store order; never nil.
func (r *notificationRepository) find(ctx context.Context, filter bson.M) ([]entity.Notification, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

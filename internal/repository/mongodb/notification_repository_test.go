package mongodb

import (
	"context"
	"testing"
	"time"

	entity "disaster-alert/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func notificationDoc(id primitive.ObjectID, email, location string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "email", Value: email},
		{Key: "location", Value: location},
		{Key: "severity", Value: "HIGH"},
		{Key: "date", Value: "2024-06-01"},
		{Key: "time", Value: "10:00:00"},
		{Key: "text", Value: "Flood warning"},
	}
}

func TestNotificationRepository_Create(t *testing.T) {
	mt := newMockT(t)

	mt.Run("success", func(mt *mtest.T) {
		repo := NewNotificationRepository(NewStore(mt.DB, time.Second))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		n := &entity.Notification{Email: "admin@example.com", Location: "Test City", Severity: "HIGH", Text: "Flood warning"}
		require.NoError(t, repo.Create(context.Background(), n))
		assert.False(t, n.ID.IsZero())
	})

	mt.Run("store error", func(mt *mtest.T) {
		repo := NewNotificationRepository(NewStore(mt.DB, time.Second))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on DisasterAlertSystem",
		}))

		err := repo.Create(context.Background(), &entity.Notification{Email: "admin@example.com"})
		assert.Error(t, err)
	})
}

func TestNotificationRepository_ListByLocation(t *testing.T) {
	mt := newMockT(t)

	mt.Run("matches", func(mt *mtest.T) {
		repo := NewNotificationRepository(NewStore(mt.DB, time.Second))
		first, second := primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, CollectionNotifications), mtest.FirstBatch,
			notificationDoc(first, "admin@example.com", "Test City"),
			notificationDoc(second, "other@example.com", "Test City"),
		))

		got, err := repo.ListByLocation(context.Background(), "Test City")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0].ID)
		assert.Equal(t, "admin@example.com", got[0].Email)
		assert.Equal(t, "HIGH", got[0].Severity)
		assert.Equal(t, "Flood warning", got[0].Text)
		assert.Equal(t, second, got[1].ID)
	})

	mt.Run("no matches", func(mt *mtest.T) {
		repo := NewNotificationRepository(NewStore(mt.DB, time.Second))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, CollectionNotifications), mtest.FirstBatch))

		got, err := repo.ListByLocation(context.Background(), "Nowhere")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNotificationRepository_ListByAdmin(t *testing.T) {
	mt := newMockT(t)

	mt.Run("matches", func(mt *mtest.T) {
		repo := NewNotificationRepository(NewStore(mt.DB, time.Second))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, CollectionNotifications), mtest.FirstBatch,
			notificationDoc(primitive.NewObjectID(), "admin@example.com", "Test City"),
		))

		got, err := repo.ListByAdmin(context.Background(), "admin@example.com")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "admin@example.com", got[0].Email)
	})

	mt.Run("no matches", func(mt *mtest.T) {
		repo := NewNotificationRepository(NewStore(mt.DB, time.Second))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, CollectionNotifications), mtest.FirstBatch))

		got, err := repo.ListByAdmin(context.Background(), "nobody@example.com")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

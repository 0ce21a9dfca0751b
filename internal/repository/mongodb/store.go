package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DatabaseName = "DisasterAlertSystem"

	CollectionUsers         = "user_data"
	CollectionAdmins        = "admin_data"
	CollectionNotifications = "notification_data"

	DefaultTimeout = 5 * time.Second
)

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// Store owns the database handle shared by every repository.
type Store struct {
	db      *mongo.Database
	timeout time.Duration
}

func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Mongo: %w", err)
	}
	if dbName == "" {
		dbName = DatabaseName
	}
	return NewStore(client.Database(dbName), timeout), nil
}

func NewStore(db *mongo.Database, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{db: db, timeout: timeout}
}

func (s *Store) Database() *mongo.Database {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping Mongo: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

// EnsureIndexes creates the unique email indexes on the account collections
// and the lookup indexes on notifications. Creating an existing index is a no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	for _, name := range []string{CollectionUsers, CollectionAdmins} {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		})
		if err != nil {
			return fmt.Errorf("failed to create email index on %s: %w", name, err)
		}
	}

	_, err := s.db.Collection(CollectionNotifications).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email")},
		{Keys: bson.D{{Key: "location", Value: 1}}, Options: options.Index().SetName("location")},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", CollectionNotifications, err)
	}
	return nil
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func wrapWriteError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}

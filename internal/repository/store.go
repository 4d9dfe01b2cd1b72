package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	eventsCollection = "events"
	joinsCollection  = "joins"
	usersCollection  = "users"
)

// Store owns the Mongo client and collection handles shared by the
// repositories. It is constructed once at startup; handlers must not be
// served before Connect has succeeded.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials Mongo and verifies the connection with a ping, retrying
// with backoff before giving up. The store is unusable on error.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	strategy := retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}

	var client *mongo.Client
	err := retry.Do(func() error {
		dialCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		c, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		if err := c.Ping(dialCtx, nil); err != nil {
			_ = c.Disconnect(dialCtx)
			return fmt.Errorf("ping: %w", err)
		}
		client = c
		return nil
	}, strategy)
	if err != nil {
		return nil, fmt.Errorf("mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

// Ping reports whether the backing store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup and uniqueness indexes the service
// relies on. Safe to call on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_unique"),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = s.db.Collection(eventsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_date", Value: 1}},
			Options: options.Index().SetName("events_event_date"),
		},
		{
			Keys:    bson.D{{Key: "creator_email", Value: 1}},
			Options: options.Index().SetName("events_creator_email"),
		},
	})
	if err != nil {
		return fmt.Errorf("events indexes: %w", err)
	}

	_, err = s.db.Collection(joinsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}},
			Options: options.Index().SetName("joins_event_id"),
		},
		{
			Keys: bson.D{
				{Key: "event_id", Value: 1},
				{Key: "user_email", Value: 1},
			},
			Options: options.Index().SetName("joins_event_user"),
		},
	})
	if err != nil {
		return fmt.Errorf("joins indexes: %w", err)
	}

	return nil
}

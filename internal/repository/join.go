package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JoinRepository struct {
	col *mongo.Collection
}

func NewJoinRepo(store *Store) *JoinRepository {
	return &JoinRepository{col: store.db.Collection(joinsCollection)}
}

type joinDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EventID      string             `bson:"event_id"`
	UserEmail    string             `bson:"user_email"`
	JoinedAt     time.Time          `bson:"joined_at"`
	Title        string             `bson:"title"`
	EventType    string             `bson:"event_type"`
	Thumbnail    string             `bson:"thumbnail"`
	Location     string             `bson:"location"`
	EventDate    time.Time          `bson:"event_date"`
	CreatorEmail string             `bson:"creator_email"`
}

func (d *joinDoc) toDomain() *domain.Join {
	return &domain.Join{
		ID:           d.ID.Hex(),
		EventID:      d.EventID,
		UserEmail:    d.UserEmail,
		JoinedAt:     d.JoinedAt,
		Title:        d.Title,
		EventType:    d.EventType,
		Thumbnail:    d.Thumbnail,
		Location:     d.Location,
		EventDate:    d.EventDate,
		CreatorEmail: d.CreatorEmail,
	}
}

func joinDocFrom(j *domain.Join) *joinDoc {
	return &joinDoc{
		EventID:      j.EventID,
		UserEmail:    j.UserEmail,
		JoinedAt:     j.JoinedAt,
		Title:        j.Title,
		EventType:    j.EventType,
		Thumbnail:    j.Thumbnail,
		Location:     j.Location,
		EventDate:    j.EventDate,
		CreatorEmail: j.CreatorEmail,
	}
}

func (r *JoinRepository) Create(ctx context.Context, j *domain.Join) (string, error) {
	res, err := r.col.InsertOne(ctx, joinDocFrom(j))
	if err != nil {
		return "", fmt.Errorf("insert join: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *JoinRepository) GetByEventAndUser(ctx context.Context, eventID, userEmail string) (*domain.Join, error) {
	var d joinDoc
	filter := bson.M{"event_id": eventID, "user_email": userEmail}
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJoinNotFound
		}
		return nil, fmt.Errorf("get join: %w", err)
	}
	return d.toDomain(), nil
}

// ListByUser returns a user's joins ordered by the snapshot event date.
func (r *JoinRepository) ListByUser(ctx context.Context, userEmail string) ([]*domain.Join, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "event_date", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"user_email": userEmail}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list joins: %w", err)
	}
	defer cur.Close(ctx)

	var res []*domain.Join
	for cur.Next(ctx) {
		var d joinDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode join: %w", err)
		}
		res = append(res, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("joins cursor: %w", err)
	}
	return res, nil
}

func (r *JoinRepository) DeleteByEvent(ctx context.Context, eventID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return 0, fmt.Errorf("delete joins by event: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *JoinRepository) CountEstimate(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count joins: %w", err)
	}
	return n, nil
}

func (r *JoinRepository) DistinctUserEmails(ctx context.Context) ([]string, error) {
	vals, err := r.col.Distinct(ctx, "user_email", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct user emails: %w", err)
	}
	return toStrings(vals), nil
}

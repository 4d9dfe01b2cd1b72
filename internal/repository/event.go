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

type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepo(store *Store) *EventRepository {
	return &EventRepository{col: store.db.Collection(eventsCollection)}
}

type eventDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	EventType    string             `bson:"event_type"`
	Thumbnail    string             `bson:"thumbnail"`
	Location     string             `bson:"location"`
	EventDate    time.Time          `bson:"event_date"`
	CreatorEmail string             `bson:"creator_email"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d *eventDoc) toDomain() *domain.Event {
	return &domain.Event{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		EventType:    d.EventType,
		Thumbnail:    d.Thumbnail,
		Location:     d.Location,
		EventDate:    d.EventDate,
		CreatorEmail: d.CreatorEmail,
		CreatedAt:    d.CreatedAt,
	}
}

func eventDocFrom(e *domain.Event) *eventDoc {
	return &eventDoc{
		Title:        e.Title,
		Description:  e.Description,
		EventType:    e.EventType,
		Thumbnail:    e.Thumbnail,
		Location:     e.Location,
		EventDate:    e.EventDate,
		CreatorEmail: e.CreatorEmail,
		CreatedAt:    e.CreatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (string, error) {
	res, err := r.col.InsertOne(ctx, eventDocFrom(e))
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	var d eventDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return d.toDomain(), nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.find(ctx, bson.M{})
}

func (r *EventRepository) ListUpcoming(ctx context.Context, after time.Time) ([]*domain.Event, error) {
	return r.find(ctx, bson.M{"event_date": bson.M{"$gt": after}})
}

func (r *EventRepository) ListByCreator(ctx context.Context, email string) ([]*domain.Event, error) {
	return r.find(ctx, bson.M{"creator_email": email})
}

func (r *EventRepository) find(ctx context.Context, filter bson.M) ([]*domain.Event, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "event_date", Value: 1}})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var res []*domain.Event
	for cur.Next(ctx) {
		var d eventDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		res = append(res, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("events cursor: %w", err)
	}
	return res, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, upd domain.UpdateEventInput) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	set := bson.M{
		"title":       upd.Title,
		"description": upd.Description,
		"event_type":  upd.EventType,
		"thumbnail":   upd.Thumbnail,
		"location":    upd.Location,
		"event_date":  upd.EventDate,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// CountEstimate uses collection metadata, which may lag behind recent
// writes. Good enough for the dashboard.
func (r *EventRepository) CountEstimate(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

func (r *EventRepository) DistinctCreatorEmails(ctx context.Context) ([]string, error) {
	vals, err := r.col.Distinct(ctx, "creator_email", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct creator emails: %w", err)
	}
	return toStrings(vals), nil
}

func toStrings(vals []interface{}) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			res = append(res, s)
		}
	}
	return res
}

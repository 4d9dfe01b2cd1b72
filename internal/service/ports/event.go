package ports

import (
	"context"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]*domain.Event, error)
	ListByCreator(ctx context.Context, email string) ([]*domain.Event, error)
	Update(ctx context.Context, id string, upd domain.UpdateEventInput) error
	Delete(ctx context.Context, id string) error
	CountEstimate(ctx context.Context) (int64, error)
	DistinctCreatorEmails(ctx context.Context) ([]string, error)
}

package ports

import (
	"context"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
)

type JoinRepo interface {
	Create(ctx context.Context, j *domain.Join) (string, error)
	GetByEventAndUser(ctx context.Context, eventID, userEmail string) (*domain.Join, error)
	ListByUser(ctx context.Context, userEmail string) ([]*domain.Join, error)
	DeleteByEvent(ctx context.Context, eventID string) (int64, error)
	CountEstimate(ctx context.Context) (int64, error)
	DistinctUserEmails(ctx context.Context) ([]string, error)
}

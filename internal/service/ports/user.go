package ports

import (
	"context"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email, displayName, photoURL string, updatedAt time.Time) error
	UpdateRole(ctx context.Context, email string, role domain.Role, updatedAt time.Time) error
	List(ctx context.Context) ([]*domain.User, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"github.com/sojibulislamrana/social-events-vercel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type UserService struct {
	repo   ports.UserRepo
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Sync creates the user on first sight and otherwise refreshes the profile
// fields that were supplied. Role is never touched here, so the call is
// idempotent for an unchanged profile (only updated_at advances).
func (s *UserService) Sync(ctx context.Context, input domain.SyncUserInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	now := time.Now().UTC()

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{
			Email:       input.Email,
			DisplayName: input.DisplayName,
			PhotoURL:    input.PhotoURL,
			Role:        domain.RoleUser,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}

		s.logger.Info("user created", logger.String("email", user.Email))
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.repo.UpdateProfile(ctx, input.Email, input.DisplayName, input.PhotoURL, now); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}
	user.UpdatedAt = now

	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	return s.repo.GetByEmail(ctx, email)
}

// SetRole changes a user's role. The requestor must resolve to an existing
// admin user.
func (s *UserService) SetRole(ctx context.Context, targetEmail string, role domain.Role, requestorEmail string) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be %q or %q", domain.ErrValidation, domain.RoleUser, domain.RoleAdmin)
	}

	if err := s.requireAdmin(ctx, requestorEmail); err != nil {
		return nil, err
	}

	target, err := s.repo.GetByEmail(ctx, targetEmail)
	if err != nil {
		return nil, fmt.Errorf("get target user: %w", err)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateRole(ctx, targetEmail, role, now); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	target.Role = role
	target.UpdatedAt = now

	s.logger.Info("user role changed",
		logger.String("email", targetEmail),
		logger.String("role", string(role)),
		logger.String("changed_by", requestorEmail),
	)

	return target, nil
}

func (s *UserService) List(ctx context.Context, requestorEmail string) ([]*domain.User, error) {
	if requestorEmail == "" {
		return nil, fmt.Errorf("%w: requestorEmail is required", domain.ErrValidation)
	}
	if err := s.requireAdmin(ctx, requestorEmail); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *UserService) requireAdmin(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrAdminRequired
	}
	requestor, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrAdminRequired
	}
	if err != nil {
		return fmt.Errorf("get requestor: %w", err)
	}
	if requestor.Role != domain.RoleAdmin {
		return domain.ErrAdminRequired
	}
	return nil
}

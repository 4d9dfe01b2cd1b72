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

type JoinService struct {
	joinRepo  ports.JoinRepo
	eventRepo ports.EventRepo
	logger    logger.Logger
}

func NewJoinService(joinRepo ports.JoinRepo, eventRepo ports.EventRepo, logger logger.Logger) *JoinService {
	return &JoinService{
		joinRepo:  joinRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Join records a user's participation in an existing event, snapshotting
// the event's display fields. The duplicate check and the insert are two
// store calls; two simultaneous joins can both pass the check, which is an
// accepted benign race.
func (s *JoinService) Join(ctx context.Context, eventID, userEmail string) (*domain.Join, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: userEmail is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	_, err = s.joinRepo.GetByEventAndUser(ctx, eventID, userEmail)
	if err == nil {
		return nil, domain.ErrAlreadyJoined
	}
	if !errors.Is(err, domain.ErrJoinNotFound) {
		return nil, fmt.Errorf("check join: %w", err)
	}

	join := domain.NewJoin(event, userEmail, time.Now().UTC())
	id, err := s.joinRepo.Create(ctx, join)
	if err != nil {
		return nil, fmt.Errorf("create join: %w", err)
	}
	join.ID = id

	s.logger.Info("event joined",
		logger.String("join_id", join.ID),
		logger.String("event_id", eventID),
		logger.String("user", userEmail),
	)

	return join, nil
}

func (s *JoinService) ListByUser(ctx context.Context, userEmail string) ([]*domain.Join, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	return s.joinRepo.ListByUser(ctx, userEmail)
}

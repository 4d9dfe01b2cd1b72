package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"github.com/sojibulislamrana/social-events-vercel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo     ports.EventRepo
	joinRepo ports.JoinRepo
	logger   logger.Logger
}

func NewEventService(repo ports.EventRepo, joinRepo ports.JoinRepo, logger logger.Logger) *EventService {
	return &EventService{
		repo:     repo,
		joinRepo: joinRepo,
		logger:   logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.CreatorEmail == "" {
		return nil, fmt.Errorf("%w: creatorEmail is required", domain.ErrValidation)
	}
	if err := validateEventFields(input.Title, input.Description, input.EventType,
		input.Thumbnail, input.Location, input.EventDate); err != nil {
		return nil, err
	}

	event := &domain.Event{
		Title:        input.Title,
		Description:  input.Description,
		EventType:    input.EventType,
		Thumbnail:    input.Thumbnail,
		Location:     input.Location,
		EventDate:    input.EventDate,
		CreatorEmail: input.CreatorEmail,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	event.ID = id

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("creator", event.CreatorEmail),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListUpcoming(ctx, time.Now().UTC())
}

func (s *EventService) ListByCreator(ctx context.Context, email string) ([]*domain.Event, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	return s.repo.ListByCreator(ctx, email)
}

// Update overwrites the mutable fields of an event after an ownership
// check. CreatorEmail and CreatedAt stay as they were.
func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput, requestorEmail string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatorEmail != requestorEmail {
		return nil, domain.ErrNotEventOwner
	}

	if err := validateEventFields(input.Title, input.Description, input.EventType,
		input.Thumbnail, input.Location, input.EventDate); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, input); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	event.Title = input.Title
	event.Description = input.Description
	event.EventType = input.EventType
	event.Thumbnail = input.Thumbnail
	event.Location = input.Location
	event.EventDate = input.EventDate

	return event, nil
}

// Delete removes an event and cascades to its joins. The cascade is
// best-effort: once the event document is gone a cascade failure is
// logged, not rolled back, since joins are display snapshots.
func (s *EventService) Delete(ctx context.Context, id, requestorEmail string) (int64, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get event: %w", err)
	}
	if event.CreatorEmail != requestorEmail {
		return 0, domain.ErrNotEventOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}

	deleted, err := s.joinRepo.DeleteByEvent(ctx, id)
	if err != nil {
		s.logger.Error("join cascade failed after event delete",
			logger.String("event_id", id),
			logger.String("error", err.Error()),
		)
		return 0, nil
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.Int64("joins_removed", deleted),
	)

	return deleted, nil
}

func validateEventFields(title, description, eventType, thumbnail, location string, eventDate time.Time) error {
	switch {
	case title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case description == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case eventType == "":
		return fmt.Errorf("%w: eventType is required", domain.ErrValidation)
	case thumbnail == "":
		return fmt.Errorf("%w: thumbnail is required", domain.ErrValidation)
	case location == "":
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if !eventDate.After(time.Now()) {
		return fmt.Errorf("%w: eventDate must be in the future", domain.ErrValidation)
	}
	return nil
}

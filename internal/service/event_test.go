package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"github.com/sojibulislamrana/social-events-vercel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validCreateInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:        "Beach Cleanup",
		Description:  "Bring gloves and good spirits.",
		EventType:    "Cleanup",
		Thumbnail:    "https://example.com/beach.jpg",
		Location:     "North Beach",
		EventDate:    time.Now().Add(48 * time.Hour),
		CreatorEmail: "alice@example.com",
	}
}

func TestEventService_Create(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	input := validCreateInput()

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, event *domain.Event) {
		assert.Equal(t, input.Title, event.Title)
		assert.Equal(t, input.CreatorEmail, event.CreatorEmail)
		assert.False(t, event.CreatedAt.IsZero())
	}).Return("64f0c1e2a1b2c3d4e5f60718", nil)

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "64f0c1e2a1b2c3d4e5f60718", event.ID)
	assert.Equal(t, input.CreatorEmail, event.CreatorEmail)
}

func TestEventService_Create_MissingFields(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	cases := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"no creator", func(in *domain.CreateEventInput) { in.CreatorEmail = "" }},
		{"no title", func(in *domain.CreateEventInput) { in.Title = "" }},
		{"no description", func(in *domain.CreateEventInput) { in.Description = "" }},
		{"no event type", func(in *domain.CreateEventInput) { in.EventType = "" }},
		{"no thumbnail", func(in *domain.CreateEventInput) { in.Thumbnail = "" }},
		{"no location", func(in *domain.CreateEventInput) { in.Location = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_PastDate(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	input := validCreateInput()
	input.EventDate = time.Now().Add(-time.Hour)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_ListByCreator_RequiresEmail(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	_, err := svc.ListByCreator(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	existing := &domain.Event{
		ID:           "e1",
		Title:        "Old Title",
		CreatorEmail: "alice@example.com",
		CreatedAt:    time.Now().Add(-24 * time.Hour),
	}
	input := domain.UpdateEventInput{
		Title:       "New Title",
		Description: "Updated description.",
		EventType:   "Workshop",
		Thumbnail:   "https://example.com/new.jpg",
		Location:    "Hall B",
		EventDate:   time.Now().Add(72 * time.Hour),
	}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, "e1", input).Return(nil)

	event, err := svc.Update(context.Background(), "e1", input, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "New Title", event.Title)
	assert.Equal(t, "alice@example.com", event.CreatorEmail)
	assert.Equal(t, existing.CreatedAt, event.CreatedAt)
}

func TestEventService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateEventInput{}, "alice@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Update_NotOwner(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	existing := &domain.Event{ID: "e1", CreatorEmail: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)

	_, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{}, "mallory@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEventOwner)
}

func TestEventService_Update_PastDateRejected(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	existing := &domain.Event{ID: "e1", CreatorEmail: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)

	input := domain.UpdateEventInput{
		Title:       "New Title",
		Description: "Updated description.",
		EventType:   "Workshop",
		Thumbnail:   "https://example.com/new.jpg",
		Location:    "Hall B",
		EventDate:   time.Now().Add(-time.Hour),
	}

	_, err := svc.Update(context.Background(), "e1", input, "alice@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Delete_CascadesJoins(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	existing := &domain.Event{ID: "e1", CreatorEmail: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)
	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	joinRepo.EXPECT().DeleteByEvent(mock.Anything, "e1").Return(int64(3), nil)

	deleted, err := svc.Delete(context.Background(), "e1", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestEventService_Delete_NotOwner(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	existing := &domain.Event{ID: "e1", CreatorEmail: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)

	_, err := svc.Delete(context.Background(), "e1", "mallory@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEventOwner)
}

func TestEventService_Delete_AlreadyGone(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Delete(context.Background(), "e1", "alice@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete_CascadeFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	existing := &domain.Event{ID: "e1", CreatorEmail: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)
	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	joinRepo.EXPECT().DeleteByEvent(mock.Anything, "e1").Return(int64(0), errors.New("connection reset"))

	deleted, err := svc.Delete(context.Background(), "e1", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestEventService_SeedDemo(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	joinRepo := mocks.NewMockJoinRepo(t)
	svc := NewEventService(repo, joinRepo, newTestLogger(t))

	ids := []string{"id1", "id2", "id3", "id4"}
	call := 0
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, event *domain.Event) {
		assert.Equal(t, demoCreatorEmail, event.CreatorEmail)
		assert.True(t, event.EventDate.After(time.Now()))
	}).RunAndReturn(func(ctx context.Context, event *domain.Event) (string, error) {
		id := ids[call]
		call++
		return id, nil
	})

	got, err := svc.SeedDemo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

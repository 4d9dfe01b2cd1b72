package service

import (
	"context"
	"testing"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"github.com/sojibulislamrana/social-events-vercel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Sync_CreatesOnFirstSight(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, user *domain.User) {
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.False(t, user.CreatedAt.IsZero())
	}).Return(nil)

	user, err := svc.Sync(context.Background(), domain.SyncUserInput{
		Email:       "alice@example.com",
		DisplayName: "Alice",
		PhotoURL:    "https://example.com/alice.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "Alice", user.DisplayName)
}

func TestUserService_Sync_UpdatesExistingKeepsRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	existing := &domain.User{
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Role:        domain.RoleAdmin,
		CreatedAt:   time.Now().Add(-24 * time.Hour),
	}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(existing, nil)
	repo.EXPECT().UpdateProfile(mock.Anything, "alice@example.com", "Alice B.", "", mock.Anything).Return(nil)

	user, err := svc.Sync(context.Background(), domain.SyncUserInput{
		Email:       "alice@example.com",
		DisplayName: "Alice B.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice B.", user.DisplayName)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, existing.CreatedAt, user.CreatedAt)
}

func TestUserService_Sync_RequiresEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	_, err := svc.Sync(context.Background(), domain.SyncUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_GetByEmail_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByEmail(context.Background(), "ghost@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_SetRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	admin := &domain.User{Email: "root@example.com", Role: domain.RoleAdmin}
	target := &domain.User{Email: "bob@example.com", Role: domain.RoleUser}

	repo.EXPECT().GetByEmail(mock.Anything, "root@example.com").Return(admin, nil)
	repo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(target, nil)
	repo.EXPECT().UpdateRole(mock.Anything, "bob@example.com", domain.RoleAdmin, mock.Anything).Return(nil)

	user, err := svc.SetRole(context.Background(), "bob@example.com", domain.RoleAdmin, "root@example.com")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestUserService_SetRole_InvalidRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	_, err := svc.SetRole(context.Background(), "bob@example.com", "owner", "root@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_SetRole_RequestorNotAdmin(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	requestor := &domain.User{Email: "bob@example.com", Role: domain.RoleUser}
	repo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(requestor, nil)

	_, err := svc.SetRole(context.Background(), "carol@example.com", domain.RoleAdmin, "bob@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminRequired)
}

func TestUserService_SetRole_UnknownRequestor(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.SetRole(context.Background(), "bob@example.com", domain.RoleUser, "ghost@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminRequired)
}

func TestUserService_SetRole_TargetNotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	admin := &domain.User{Email: "root@example.com", Role: domain.RoleAdmin}
	repo.EXPECT().GetByEmail(mock.Anything, "root@example.com").Return(admin, nil)
	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.SetRole(context.Background(), "ghost@example.com", domain.RoleAdmin, "root@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_AdminOnly(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	admin := &domain.User{Email: "root@example.com", Role: domain.RoleAdmin}
	users := []*domain.User{admin, {Email: "bob@example.com", Role: domain.RoleUser}}

	repo.EXPECT().GetByEmail(mock.Anything, "root@example.com").Return(admin, nil)
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	got, err := svc.List(context.Background(), "root@example.com")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUserService_List_NonAdminRejected(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	requestor := &domain.User{Email: "bob@example.com", Role: domain.RoleUser}
	repo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(requestor, nil)

	_, err := svc.List(context.Background(), "bob@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminRequired)
}

func TestUserService_List_RequiresRequestor(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	_, err := svc.List(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"github.com/sojibulislamrana/social-events-vercel/internal/handler/dto"
	hmocks "github.com/sojibulislamrana/social-events-vercel/internal/handler/mocks"
	"github.com/sojibulislamrana/social-events-vercel/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testEventID = "64f0c1e2a1b2c3d4e5f60718"

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

type testDeps struct {
	events *hmocks.MockEventSvc
	joins  *hmocks.MockJoinSvc
	users  *hmocks.MockUserSvc
	stats  *hmocks.MockStatsSvc
	pinger *stubPinger
}

func setupRouter(t *testing.T) (*testDeps, http.Handler) {
	t.Helper()

	deps := &testDeps{
		events: hmocks.NewMockEventSvc(t),
		joins:  hmocks.NewMockJoinSvc(t),
		users:  hmocks.NewMockUserSvc(t),
		stats:  hmocks.NewMockStatsSvc(t),
		pinger: &stubPinger{},
	}

	h := NewHandler(deps.events, deps.joins, deps.users, deps.stats, deps.pinger)
	r := router.InitRouter("test", h)

	return deps, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:           testEventID,
		Title:        "Beach Cleanup",
		Description:  "Bring gloves and good spirits.",
		EventType:    "Cleanup",
		Thumbnail:    "https://example.com/beach.jpg",
		Location:     "North Beach",
		EventDate:    time.Now().Add(48 * time.Hour).Truncate(time.Second),
		CreatorEmail: "alice@example.com",
		CreatedAt:    time.Now().Truncate(time.Second),
	}
}

func createEventBody() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:        "Beach Cleanup",
		Description:  "Bring gloves and good spirits.",
		EventType:    "Cleanup",
		Thumbnail:    "https://example.com/beach.jpg",
		Location:     "North Beach",
		EventDate:    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		CreatorEmail: "alice@example.com",
	}
}

// --- Liveness ---

func TestHandler_Liveness(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	deps, r := setupRouter(t)

	event := sampleEvent()
	deps.events.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/events", createEventBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, testEventID, resp.ID)
	assert.Equal(t, "Beach Cleanup", resp.Event.Title)
}

func TestHandler_CreateEvent_MissingField(t *testing.T) {
	_, r := setupRouter(t)

	body := createEventBody()
	body.Title = ""

	w := doJSON(t, r, http.MethodPost, "/events", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := createEventBody()
	body.EventDate = "next tuesday"

	w := doJSON(t, r, http.MethodPost, "/events", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "RFC3339")
}

func TestHandler_GetEvent_Success(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().GetByID(mock.Anything, testEventID).Return(sampleEvent(), nil)

	w := doJSON(t, r, http.MethodGet, "/events/"+testEventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, testEventID, resp.Event.ID)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/events/not-an-object-id", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().GetByID(mock.Anything, testEventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/events/"+testEventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().List(mock.Anything).Return([]*domain.Event{sampleEvent()}, nil)

	w := doJSON(t, r, http.MethodGet, "/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Len(t, resp.Events, 1)
}

func TestHandler_ListUpcomingEvents(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().ListUpcoming(mock.Anything).Return([]*domain.Event{}, nil)

	w := doJSON(t, r, http.MethodGet, "/events/upcoming", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Events)
	assert.Empty(t, resp.Events)
}

func TestHandler_ListEventsByCreator(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().ListByCreator(mock.Anything, "alice@example.com").
		Return([]*domain.Event{sampleEvent()}, nil)

	w := doJSON(t, r, http.MethodGet, "/events/user?email=alice@example.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateEvent_Forbidden(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Update(mock.Anything, testEventID, mock.Anything, "mallory@example.com").
		Return(nil, domain.ErrNotEventOwner)

	body := dto.UpdateEventRequest{
		Title:          "Hijacked",
		Description:    "changed",
		EventType:      "Cleanup",
		Thumbnail:      "https://example.com/x.jpg",
		Location:       "Elsewhere",
		EventDate:      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		RequestorEmail: "mallory@example.com",
	}

	w := doJSON(t, r, http.MethodPut, "/events/"+testEventID, body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateEvent_PastDate(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Update(mock.Anything, testEventID, mock.Anything, "alice@example.com").
		Return(nil, domain.ErrValidation)

	body := dto.UpdateEventRequest{
		Title:          "Beach Cleanup",
		Description:    "Bring gloves.",
		EventType:      "Cleanup",
		Thumbnail:      "https://example.com/beach.jpg",
		Location:       "North Beach",
		EventDate:      time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
		RequestorEmail: "alice@example.com",
	}

	w := doJSON(t, r, http.MethodPut, "/events/"+testEventID, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Delete(mock.Anything, testEventID, "alice@example.com").Return(int64(2), nil)

	w := doJSON(t, r, http.MethodDelete, "/events/"+testEventID+"?email=alice@example.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDeletedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, int64(2), resp.DeletedJoins)
}

func TestHandler_DeleteEvent_RequiresEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/events/"+testEventID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SeedDemoEvents(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().SeedDemo(mock.Anything).Return([]string{"a", "b", "c", "d"}, nil)

	w := doJSON(t, r, http.MethodGet, "/seed-demo-events", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SeededResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 4, resp.Inserted)
	assert.Len(t, resp.IDs, 4)
}

// --- Joins ---

func TestHandler_JoinEvent_Success(t *testing.T) {
	deps, r := setupRouter(t)

	join := &domain.Join{
		ID:        "j1",
		EventID:   testEventID,
		UserEmail: "bob@example.com",
		JoinedAt:  time.Now(),
		Title:     "Beach Cleanup",
	}
	deps.joins.EXPECT().Join(mock.Anything, testEventID, "bob@example.com").Return(join, nil)

	body := dto.JoinEventRequest{EventID: testEventID, UserEmail: "bob@example.com"}
	w := doJSON(t, r, http.MethodPost, "/join-event", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.JoinCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "j1", resp.ID)
	assert.Equal(t, "Beach Cleanup", resp.Join.Title)
}

func TestHandler_JoinEvent_Duplicate(t *testing.T) {
	deps, r := setupRouter(t)

	deps.joins.EXPECT().Join(mock.Anything, testEventID, "bob@example.com").
		Return(nil, domain.ErrAlreadyJoined)

	body := dto.JoinEventRequest{EventID: testEventID, UserEmail: "bob@example.com"}
	w := doJSON(t, r, http.MethodPost, "/join-event", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_JoinEvent_InvalidEventID(t *testing.T) {
	_, r := setupRouter(t)

	body := dto.JoinEventRequest{EventID: "nope", UserEmail: "bob@example.com"}
	w := doJSON(t, r, http.MethodPost, "/join-event", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListJoinedEvents_Empty(t *testing.T) {
	deps, r := setupRouter(t)

	deps.joins.EXPECT().ListByUser(mock.Anything, "bob@example.com").Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/joined?email=bob@example.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.JoinsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotNil(t, resp.Joins)
	assert.Empty(t, resp.Joins)
}

// --- Users ---

func TestHandler_SyncUser_OmitsCreatedAt(t *testing.T) {
	deps, r := setupRouter(t)

	user := &domain.User{
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Role:        domain.RoleUser,
		CreatedAt:   time.Now(),
	}
	deps.users.EXPECT().Sync(mock.Anything, mock.Anything).Return(user, nil)

	body := dto.SyncUserRequest{Email: "alice@example.com", DisplayName: "Alice"}
	w := doJSON(t, r, http.MethodPost, "/users/sync", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "createdAt")

	var resp dto.UserEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user", resp.User.Role)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	deps, r := setupRouter(t)

	deps.users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").
		Return(nil, domain.ErrUserNotFound)

	w := doJSON(t, r, http.MethodGet, "/users/ghost@example.com", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SetUserRole_Forbidden(t *testing.T) {
	deps, r := setupRouter(t)

	deps.users.EXPECT().SetRole(mock.Anything, "bob@example.com", domain.RoleAdmin, "bob@example.com").
		Return(nil, domain.ErrAdminRequired)

	body := dto.SetRoleRequest{Role: "admin", RequestorEmail: "bob@example.com"}
	w := doJSON(t, r, http.MethodPatch, "/users/bob@example.com/role", body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_SetUserRole_Success(t *testing.T) {
	deps, r := setupRouter(t)

	promoted := &domain.User{Email: "bob@example.com", Role: domain.RoleAdmin, CreatedAt: time.Now()}
	deps.users.EXPECT().SetRole(mock.Anything, "bob@example.com", domain.RoleAdmin, "root@example.com").
		Return(promoted, nil)

	body := dto.SetRoleRequest{Role: "admin", RequestorEmail: "root@example.com"}
	w := doJSON(t, r, http.MethodPatch, "/users/bob@example.com/role", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.User.Role)
}

func TestHandler_ListUsers_Forbidden(t *testing.T) {
	deps, r := setupRouter(t)

	deps.users.EXPECT().List(mock.Anything, "bob@example.com").Return(nil, domain.ErrAdminRequired)

	w := doJSON(t, r, http.MethodGet, "/users?requestorEmail=bob@example.com", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Ops ---

func TestHandler_Stats(t *testing.T) {
	deps, r := setupRouter(t)

	deps.stats.EXPECT().Totals(mock.Anything).
		Return(&domain.Stats{TotalEvents: 5, TotalJoins: 12, TotalUsers: 4}, nil)

	w := doJSON(t, r, http.MethodGet, "/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, int64(5), resp.Stats.TotalEvents)
	assert.Equal(t, int64(12), resp.Stats.TotalJoins)
	assert.Equal(t, int64(4), resp.Stats.TotalUsers)
}

func TestHandler_TestDB(t *testing.T) {
	deps, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/test-db", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	deps.pinger.err = errors.New("connection refused")
	w = doJSON(t, r, http.MethodGet, "/test-db", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Lifecycle ---

// Walks an event through create, edit attempts, joins and delete the way a
// client session would, asserting the status progression.
func TestHandler_EventLifecycle(t *testing.T) {
	deps, r := setupRouter(t)

	event := sampleEvent()

	deps.events.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil).Once()
	w := doJSON(t, r, http.MethodPost, "/events", createEventBody())
	require.Equal(t, http.StatusCreated, w.Code)

	deps.events.EXPECT().GetByID(mock.Anything, testEventID).Return(event, nil).Once()
	w = doJSON(t, r, http.MethodGet, "/events/"+testEventID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	deps.events.EXPECT().Update(mock.Anything, testEventID, mock.Anything, "mallory@example.com").
		Return(nil, domain.ErrNotEventOwner).Once()
	w = doJSON(t, r, http.MethodPut, "/events/"+testEventID, dto.UpdateEventRequest{
		Title:          "Hijacked",
		Description:    "changed",
		EventType:      "Cleanup",
		Thumbnail:      "https://example.com/x.jpg",
		Location:       "Elsewhere",
		EventDate:      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		RequestorEmail: "mallory@example.com",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	join := domain.NewJoin(event, "bob@example.com", time.Now())
	join.ID = "j1"
	deps.joins.EXPECT().Join(mock.Anything, testEventID, "bob@example.com").Return(join, nil).Once()
	w = doJSON(t, r, http.MethodPost, "/join-event", dto.JoinEventRequest{
		EventID: testEventID, UserEmail: "bob@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	deps.joins.EXPECT().Join(mock.Anything, testEventID, "bob@example.com").
		Return(nil, domain.ErrAlreadyJoined).Once()
	w = doJSON(t, r, http.MethodPost, "/join-event", dto.JoinEventRequest{
		EventID: testEventID, UserEmail: "bob@example.com",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	deps.events.EXPECT().Delete(mock.Anything, testEventID, "alice@example.com").
		Return(int64(1), nil).Once()
	w = doJSON(t, r, http.MethodDelete, "/events/"+testEventID+"?email=alice@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	deps.joins.EXPECT().ListByUser(mock.Anything, "bob@example.com").Return(nil, nil).Once()
	w = doJSON(t, r, http.MethodGet, "/joined?email=bob@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var joined dto.JoinsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joined))
	assert.Empty(t, joined.Joins)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"github.com/sojibulislamrana/social-events-vercel/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context) ([]*domain.Event, error)
	ListByCreator(ctx context.Context, email string) ([]*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput, requestorEmail string) (*domain.Event, error)
	Delete(ctx context.Context, id, requestorEmail string) (int64, error)
	SeedDemo(ctx context.Context) ([]string, error)
}

type JoinSvc interface {
	Join(ctx context.Context, eventID, userEmail string) (*domain.Join, error)
	ListByUser(ctx context.Context, userEmail string) ([]*domain.Join, error)
}

type UserSvc interface {
	Sync(ctx context.Context, input domain.SyncUserInput) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetRole(ctx context.Context, targetEmail string, role domain.Role, requestorEmail string) (*domain.User, error)
	List(ctx context.Context, requestorEmail string) ([]*domain.User, error)
}

type StatsSvc interface {
	Totals(ctx context.Context) (*domain.Stats, error)
}

// StorePinger reports store reachability for the /test-db probe.
type StorePinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	eventService EventSvc
	joinService  JoinSvc
	userService  UserSvc
	statsService StatsSvc
	store        StorePinger
}

func NewHandler(eventService EventSvc, joinService JoinSvc, userService UserSvc, statsService StatsSvc, store StorePinger) *Handler {
	return &Handler{
		eventService: eventService,
		joinService:  joinService,
		userService:  userService,
		statsService: statsService,
		store:        store,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid eventDate format, expected RFC3339"))
		return
	}

	input := domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		EventType:    req.EventType,
		Thumbnail:    req.Thumbnail,
		Location:     req.Location,
		EventDate:    eventDate,
		CreatorEmail: req.CreatorEmail,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.EventCreatedResponse{
		OK:    true,
		ID:    event.ID,
		Event: dto.ToEventResponse(event),
	})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventsEnvelope(events))
}

func (h *Handler) ListUpcomingEvents(c *ginext.Context) {
	events, err := h.eventService.ListUpcoming(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventsEnvelope(events))
}

func (h *Handler) ListEventsByCreator(c *ginext.Context) {
	email := c.Query("email")
	events, err := h.eventService.ListByCreator(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventsEnvelope(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid event id"))
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EventEnvelope{OK: true, Event: dto.ToEventResponse(event)})
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid event id"))
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid eventDate format, expected RFC3339"))
		return
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventType:   req.EventType,
		Thumbnail:   req.Thumbnail,
		Location:    req.Location,
		EventDate:   eventDate,
	}

	event, err := h.eventService.Update(c.Request.Context(), id, input, req.RequestorEmail)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EventEnvelope{OK: true, Event: dto.ToEventResponse(event)})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid event id"))
		return
	}

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.Error("email query parameter is required"))
		return
	}

	deleted, err := h.eventService.Delete(c.Request.Context(), id, email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EventDeletedResponse{OK: true, DeletedJoins: deleted})
}

func (h *Handler) SeedDemoEvents(c *ginext.Context) {
	ids, err := h.eventService.SeedDemo(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SeededResponse{OK: true, Inserted: len(ids), IDs: ids})
}

// Joins

func (h *Handler) JoinEvent(c *ginext.Context) {
	var req dto.JoinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}
	if _, err := primitive.ObjectIDFromHex(req.EventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid event id"))
		return
	}

	join, err := h.joinService.Join(c.Request.Context(), req.EventID, req.UserEmail)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.JoinCreatedResponse{
		OK:   true,
		ID:   join.ID,
		Join: dto.ToJoinResponse(join),
	})
}

func (h *Handler) ListJoinedEvents(c *ginext.Context) {
	email := c.Query("email")
	joins, err := h.joinService.ListByUser(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJoinsEnvelope(joins))
}

// Users

func (h *Handler) SyncUser(c *ginext.Context) {
	var req dto.SyncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	user, err := h.userService.Sync(c.Request.Context(), domain.SyncUserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{OK: true, User: dto.ToUserProjection(user)})
}

func (h *Handler) GetUser(c *ginext.Context) {
	email := c.Param("email")
	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{OK: true, User: dto.ToUserResponse(user)})
}

func (h *Handler) SetUserRole(c *ginext.Context) {
	email := c.Param("email")

	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	user, err := h.userService.SetRole(c.Request.Context(), email, domain.Role(req.Role), req.RequestorEmail)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{OK: true, User: dto.ToUserResponse(user)})
}

func (h *Handler) ListUsers(c *ginext.Context) {
	requestor := c.Query("requestorEmail")
	users, err := h.userService.List(c.Request.Context(), requestor)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUsersEnvelope(users))
}

// Ops

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.statsService.Totals(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsEnvelope{OK: true, Stats: *stats})
}

func (h *Handler) TestDB(c *ginext.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error("store unreachable"))
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{OK: true, Message: "store connection healthy"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrJoinNotFound):
		c.JSON(http.StatusNotFound, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrAlreadyJoined):
		c.JSON(http.StatusConflict, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrNotEventOwner),
		errors.Is(err, domain.ErrAdminRequired):
		c.JSON(http.StatusForbidden, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.Error("internal server error"))
	}
}

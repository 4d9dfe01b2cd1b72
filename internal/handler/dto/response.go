package dto

import (
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
)

// Every payload carries ok:true; failures use ErrorResponse with ok:false.

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{OK: false, Error: msg}
}

type EventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EventType    string `json:"eventType"`
	Thumbnail    string `json:"thumbnail"`
	Location     string `json:"location"`
	EventDate    string `json:"eventDate"`
	CreatorEmail string `json:"creatorEmail"`
	CreatedAt    string `json:"createdAt"`
}

type EventCreatedResponse struct {
	OK    bool          `json:"ok"`
	ID    string        `json:"id"`
	Event EventResponse `json:"event"`
}

type EventEnvelope struct {
	OK    bool          `json:"ok"`
	Event EventResponse `json:"event"`
}

type EventsEnvelope struct {
	OK     bool            `json:"ok"`
	Events []EventResponse `json:"events"`
}

type EventDeletedResponse struct {
	OK           bool  `json:"ok"`
	DeletedJoins int64 `json:"deletedJoins"`
}

type JoinResponse struct {
	ID           string `json:"id"`
	EventID      string `json:"eventId"`
	UserEmail    string `json:"userEmail"`
	JoinedAt     string `json:"joinedAt"`
	Title        string `json:"title"`
	EventType    string `json:"eventType"`
	Thumbnail    string `json:"thumbnail"`
	Location     string `json:"location"`
	EventDate    string `json:"eventDate"`
	CreatorEmail string `json:"creatorEmail"`
}

type JoinCreatedResponse struct {
	OK   bool         `json:"ok"`
	ID   string       `json:"id"`
	Join JoinResponse `json:"join"`
}

type JoinsEnvelope struct {
	OK    bool           `json:"ok"`
	Joins []JoinResponse `json:"joins"`
}

// UserResponse is the public projection of a user record.
type UserResponse struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	Role        string `json:"role"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type UserEnvelope struct {
	OK   bool         `json:"ok"`
	User UserResponse `json:"user"`
}

type UsersEnvelope struct {
	OK    bool           `json:"ok"`
	Users []UserResponse `json:"users"`
}

type StatsEnvelope struct {
	OK    bool         `json:"ok"`
	Stats domain.Stats `json:"stats"`
}

type SeededResponse struct {
	OK       bool     `json:"ok"`
	Inserted int      `json:"inserted"`
	IDs      []string `json:"ids"`
}

type StatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		EventType:    e.EventType,
		Thumbnail:    e.Thumbnail,
		Location:     e.Location,
		EventDate:    e.EventDate.Format(time.RFC3339),
		CreatorEmail: e.CreatorEmail,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventsEnvelope(events []*domain.Event) EventsEnvelope {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return EventsEnvelope{OK: true, Events: resp}
}

func ToJoinResponse(j *domain.Join) JoinResponse {
	return JoinResponse{
		ID:           j.ID,
		EventID:      j.EventID,
		UserEmail:    j.UserEmail,
		JoinedAt:     j.JoinedAt.Format(time.RFC3339),
		Title:        j.Title,
		EventType:    j.EventType,
		Thumbnail:    j.Thumbnail,
		Location:     j.Location,
		EventDate:    j.EventDate.Format(time.RFC3339),
		CreatorEmail: j.CreatorEmail,
	}
}

func ToJoinsEnvelope(joins []*domain.Join) JoinsEnvelope {
	resp := make([]JoinResponse, 0, len(joins))
	for _, j := range joins {
		resp = append(resp, ToJoinResponse(j))
	}
	return JoinsEnvelope{OK: true, Joins: resp}
}

// ToUserProjection omits createdAt, for sync_user's response.
func ToUserProjection(u *domain.User) UserResponse {
	return UserResponse{
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        string(u.Role),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	resp := ToUserProjection(u)
	resp.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	return resp
}

func ToUsersEnvelope(users []*domain.User) UsersEnvelope {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, ToUserResponse(u))
	}
	return UsersEnvelope{OK: true, Users: resp}
}

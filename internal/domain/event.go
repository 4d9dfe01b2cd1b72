package domain

import "time"

type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	EventType    string    `json:"eventType"`
	Thumbnail    string    `json:"thumbnail"`
	Location     string    `json:"location"`
	EventDate    time.Time `json:"eventDate"`
	CreatorEmail string    `json:"creatorEmail"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateEventInput struct {
	Title        string
	Description  string
	EventType    string
	Thumbnail    string
	Location     string
	EventDate    time.Time
	CreatorEmail string
}

// UpdateEventInput carries the mutable fields of an event.
// CreatorEmail and CreatedAt are immutable and have no counterpart here.
type UpdateEventInput struct {
	Title       string
	Description string
	EventType   string
	Thumbnail   string
	Location    string
	EventDate   time.Time
}

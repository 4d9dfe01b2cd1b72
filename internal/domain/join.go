package domain

import "time"

// Join is a user's participation record for an event. The event display
// fields are a snapshot taken at join time and stay frozen even if the
// event is edited later.
type Join struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	UserEmail    string    `json:"userEmail"`
	JoinedAt     time.Time `json:"joinedAt"`
	Title        string    `json:"title"`
	EventType    string    `json:"eventType"`
	Thumbnail    string    `json:"thumbnail"`
	Location     string    `json:"location"`
	EventDate    time.Time `json:"eventDate"`
	CreatorEmail string    `json:"creatorEmail"`
}

// NewJoin builds a participation record carrying the event's display
// snapshot at this instant.
func NewJoin(event *Event, userEmail string, now time.Time) *Join {
	return &Join{
		EventID:      event.ID,
		UserEmail:    userEmail,
		JoinedAt:     now,
		Title:        event.Title,
		EventType:    event.EventType,
		Thumbnail:    event.Thumbnail,
		Location:     event.Location,
		EventDate:    event.EventDate,
		CreatorEmail: event.CreatorEmail,
	}
}

package dto

type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	EventType    string `json:"eventType" binding:"required"`
	Thumbnail    string `json:"thumbnail" binding:"required"`
	Location     string `json:"location" binding:"required"`
	EventDate    string `json:"eventDate" binding:"required"`
	CreatorEmail string `json:"creatorEmail" binding:"required,email"`
}

type UpdateEventRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	EventType      string `json:"eventType" binding:"required"`
	Thumbnail      string `json:"thumbnail" binding:"required"`
	Location       string `json:"location" binding:"required"`
	EventDate      string `json:"eventDate" binding:"required"`
	RequestorEmail string `json:"requestorEmail" binding:"required,email"`
}

type JoinEventRequest struct {
	EventID   string `json:"eventId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

type SyncUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type SetRoleRequest struct {
	Role           string `json:"role" binding:"required"`
	RequestorEmail string `json:"requestorEmail" binding:"required,email"`
}

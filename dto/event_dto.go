package dto

// CreateEventRequest is the payload for recording an event
type CreateEventRequest struct {
	EventType   string         `json:"eventType" binding:"required"`
	EventStatus *string        `json:"eventStatus"`
	Metadata    map[string]any `json:"metadata"`
}

// UpdateEventRequest updates an event in place. Nil fields are left
// unchanged; an EventStatus pointing at the empty string clears the status.
type UpdateEventRequest struct {
	EventType   *string        `json:"eventType"`
	EventStatus *string        `json:"eventStatus"`
	Metadata    map[string]any `json:"metadata"`
}

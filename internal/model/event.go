package model

import "time"

// Event represents a calendar event owned by a single user.
// Date is a calendar date in YYYY-MM-DD form; Time is an optional
// 24-hour HH:MM time-of-day with no timezone.
type Event struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Date        string
	Time        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateEventRequest represents an event creation request.
// Date accepts a full ISO-8601 timestamp; only the calendar date is kept.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// UpdateEventRequest represents a partial event update. Pointer fields
// distinguish a field present in the payload from one that was omitted:
// nil leaves the stored value unchanged. An empty Time clears the stored
// time to null.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
}

// EventResponse represents event data in API responses. Time serializes
// as "HH:MM" or null.
type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
}

// EventListResponse wraps the events owned by the requesting user.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// EventEnvelope wraps a single event together with a status message,
// as returned by create and update.
type EventEnvelope struct {
	Message string        `json:"message"`
	Event   EventResponse `json:"event"`
}

// MessageResponse is a bare confirmation message, as returned by delete.
type MessageResponse struct {
	Message string `json:"message"`
}

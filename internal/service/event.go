package service

import (
	"context"
	"errors"

	"github.com/eventbook/eventbook-go/internal/dateparse"
	"github.com/eventbook/eventbook-go/internal/model"
	"github.com/eventbook/eventbook-go/internal/repository"
)

var (
	ErrTitleDateRequired = errors.New("title and date are required")
	// ErrEventNotFound is returned both when the event does not exist and
	// when it belongs to another user; the two cases are indistinguishable
	// to the caller.
	ErrEventNotFound = errors.New("event not found")
)

// EventService handles event business logic for the authenticated owner.
type EventService struct {
	events *repository.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(events *repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// List returns all events owned by the given user.
func (s *EventService) List(ctx context.Context, userID int64) (model.EventListResponse, error) {
	events, err := s.events.ListByOwner(ctx, userID)
	if err != nil {
		return model.EventListResponse{}, err
	}

	resp := model.EventListResponse{Events: make([]model.EventResponse, len(events))}
	for i, event := range events {
		resp.Events[i] = eventToResponse(&event)
	}
	return resp, nil
}

// Create validates and persists a new event owned by the given user.
// The date may be a full ISO-8601 timestamp; only its calendar date is
// stored. The time, when given, must be 24-hour HH:MM.
func (s *EventService) Create(ctx context.Context, userID int64, req model.CreateEventRequest) (model.EventResponse, error) {
	if req.Title == "" || req.Date == "" {
		return model.EventResponse{}, ErrTitleDateRequired
	}

	date, err := dateparse.Date(req.Date)
	if err != nil {
		return model.EventResponse{}, err
	}

	var eventTime *string
	if req.Time != "" {
		parsed, err := dateparse.TimeOfDay(req.Time)
		if err != nil {
			return model.EventResponse{}, err
		}
		eventTime = &parsed
	}

	event := &model.Event{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        eventTime,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return model.EventResponse{}, err
	}

	return eventToResponse(event), nil
}

// Update applies a partial update to an event owned by the given user.
// Omitted fields keep their stored values; title and description overwrite
// whenever present, even with an empty value; a non-empty date is
// re-parsed with the create rule; a present-but-empty time clears the
// stored time.
func (s *EventService) Update(ctx context.Context, userID, eventID int64, req model.UpdateEventRequest) (model.EventResponse, error) {
	event, err := s.events.GetByOwner(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.EventResponse{}, ErrEventNotFound
		}
		return model.EventResponse{}, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil && *req.Date != "" {
		date, err := dateparse.Date(*req.Date)
		if err != nil {
			return model.EventResponse{}, err
		}
		event.Date = date
	}
	if req.Time != nil {
		if *req.Time == "" {
			event.Time = nil
		} else {
			parsed, err := dateparse.TimeOfDay(*req.Time)
			if err != nil {
				return model.EventResponse{}, err
			}
			event.Time = &parsed
		}
	}

	if err := s.events.Update(ctx, event); err != nil {
		return model.EventResponse{}, err
	}

	return eventToResponse(event), nil
}

// Delete removes an event owned by the given user.
func (s *EventService) Delete(ctx context.Context, userID, eventID int64) error {
	err := s.events.Delete(ctx, userID, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return ErrEventNotFound
	}
	return err
}

func eventToResponse(event *model.Event) model.EventResponse {
	return model.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
	}
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eventbook/eventbook-go/internal/dateparse"
	"github.com/eventbook/eventbook-go/internal/middleware"
	"github.com/eventbook/eventbook-go/internal/model"
	"github.com/eventbook/eventbook-go/internal/service"
)

// EventHandler handles HTTP requests for event operations. All routes are
// mounted behind the auth middleware, which injects the resolved user.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// HandleList handles GET /api/events requests.
func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorMessage("unauthorized"))
		return
	}

	resp, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("listing events failed", "error", err, "user_id", user.ID)
		writeJSON(w, http.StatusInternalServerError, errorMessage("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /api/events requests.
func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorMessage("unauthorized"))
		return
	}

	var req model.CreateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleDateRequired),
			errors.Is(err, dateparse.ErrInvalidDate),
			errors.Is(err, dateparse.ErrInvalidTime):
			writeJSON(w, http.StatusBadRequest, errorMessage(err.Error()))
		default:
			slog.Error("creating event failed", "error", err, "user_id", user.ID)
			writeJSON(w, http.StatusInternalServerError, errorMessage("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.EventEnvelope{
		Message: "event created successfully",
		Event:   event,
	})
}

// HandleUpdate handles PUT /api/events/{event_id} requests.
func (h *EventHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorMessage("unauthorized"))
		return
	}

	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	var req model.UpdateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.service.Update(r.Context(), user.ID, eventID, req)
	if err != nil {
		switch {
		case errors.Is(err, dateparse.ErrInvalidDate), errors.Is(err, dateparse.ErrInvalidTime):
			writeJSON(w, http.StatusBadRequest, errorMessage(err.Error()))
		case errors.Is(err, service.ErrEventNotFound):
			writeJSON(w, http.StatusNotFound, errorMessage(err.Error()))
		default:
			slog.Error("updating event failed", "error", err, "user_id", user.ID, "event_id", eventID)
			writeJSON(w, http.StatusInternalServerError, errorMessage("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.EventEnvelope{
		Message: "event updated successfully",
		Event:   event,
	})
}

// HandleDelete handles DELETE /api/events/{event_id} requests.
func (h *EventHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorMessage("unauthorized"))
		return
	}

	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			writeJSON(w, http.StatusNotFound, errorMessage(err.Error()))
			return
		}
		slog.Error("deleting event failed", "error", err, "user_id", user.ID, "event_id", eventID)
		writeJSON(w, http.StatusInternalServerError, errorMessage("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "event deleted successfully"})
}

// eventIDParam parses the event_id path parameter. A non-integer id can
// never match an event, so it reports the same 404 as a missing one.
func eventIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "event_id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusNotFound, errorMessage(service.ErrEventNotFound.Error()))
		return 0, false
	}
	return id, true
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventbook/eventbook-go/internal/middleware"
)

// NewRouter assembles the API: public auth endpoints behind the rate
// limiter, event endpoints behind token auth, plus a health check.
func NewRouter(auth *AuthHandler, events *EventHandler, tokenAuth, rateLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		r.Post("/api/auth/register", auth.HandleRegister)
		r.Post("/api/auth/login", auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(tokenAuth)
		r.Get("/api/events", events.HandleList)
		r.Post("/api/events", events.HandleCreate)
		r.Put("/api/events/{event_id}", events.HandleUpdate)
		r.Delete("/api/events/{event_id}", events.HandleDelete)
	})

	return r
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventbook/eventbook-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorMessage(msg string) model.MessageResponse {
	return model.MessageResponse{Message: msg}
}

// decodeJSON decodes the request body into v with a 1MB cap. On failure it
// writes the error response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorMessage("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorMessage("invalid request body"))
		return false
	}

	return true
}

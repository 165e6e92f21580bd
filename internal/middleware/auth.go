package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/eventbook/eventbook-go/internal/crypto"
	"github.com/eventbook/eventbook-go/internal/model"
	"github.com/eventbook/eventbook-go/internal/repository"
)

type contextKey string

const userKey contextKey = "user"

// Auth returns middleware that authenticates requests with a Bearer token
// from the Authorization header. The 401 message names whether the token
// was absent, invalid, or expired. A verified token whose account no
// longer exists yields 404: tokens can outlive deleted accounts. On
// success the resolved user is injected into the request context.
func Auth(secret string, users *repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "access token is missing")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				switch {
				case errors.Is(err, crypto.ErrTokenMissing):
					writeJSONError(w, http.StatusUnauthorized, "access token is missing")
				case errors.Is(err, crypto.ErrTokenExpired):
					writeJSONError(w, http.StatusUnauthorized, "access token has expired")
				default:
					writeJSONError(w, http.StatusUnauthorized, "access token is invalid")
				}
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					writeJSONError(w, http.StatusNotFound, "user not found")
					return
				}
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/eventbook/eventbook-go/internal/model"
	"github.com/eventbook/eventbook-go/internal/repository"
)

const testSecret = "test-secret"

type testEnv struct {
	auth   *AuthService
	events *EventService
	users  *repository.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := repository.NewDB("sqlite", filepath.Join(t.TempDir(), "eventbook_test.db"))
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	users := repository.NewUserRepository(db)
	return &testEnv{
		auth:   NewAuthService(users, testSecret, 24*time.Hour),
		events: NewEventService(repository.NewEventRepository(db)),
		users:  users,
	}
}

// registerUser registers an account and returns its persisted id.
func (env *testEnv) registerUser(t *testing.T, username, email string) int64 {
	t.Helper()

	_, err := env.auth.Register(context.Background(), model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register(%q) unexpected error: %v", username, err)
	}

	user, err := env.users.GetByUsername(context.Background(), username)
	if err != nil {
		t.Fatalf("GetByUsername(%q) unexpected error: %v", username, err)
	}
	return user.ID
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/eventbook/eventbook-go/internal/model"
)

func TestUserCreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &model.User{
		Username:     "ana",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		Name:         "Ana",
		Lastname:     "García",
		Phone:        "555-0100",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Create() did not set the generated ID")
	}

	byUsername, err := repo.GetByUsername(ctx, "ana")
	if err != nil {
		t.Fatalf("GetByUsername() unexpected error: %v", err)
	}
	if byUsername.ID != user.ID || byUsername.Email != "ana@example.com" || byUsername.Lastname != "García" {
		t.Errorf("GetByUsername() = %+v, want stored user", byUsername)
	}

	byEmail, err := repo.GetByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("GetByEmail() ID = %d, want %d", byEmail.ID, user.ID)
	}

	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if byID.Username != "ana" {
		t.Errorf("GetByID() Username = %q, want %q", byID.Username, "ana")
	}
}

func TestUserGetNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByUsername() error = %v, want ErrUserNotFound", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByEmail() error = %v, want ErrUserNotFound", err)
	}
	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createTestUser(t, repo, "ana", "ana@example.com")

	err := repo.Create(context.Background(), &model.User{
		Username:     "ana",
		Email:        "other@example.com",
		PasswordHash: "hash",
	})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Create() error = %v, want ErrDuplicateUsername", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createTestUser(t, repo, "ana", "ana@example.com")

	err := repo.Create(context.Background(), &model.User{
		Username:     "other",
		Email:        "ana@example.com",
		PasswordHash: "hash",
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUniqueViolation(t *testing.T) {
	if _, ok := uniqueViolation(nil); ok {
		t.Error("uniqueViolation(nil) = true, want false")
	}
	if _, ok := uniqueViolation(ErrUserNotFound); ok {
		t.Error("uniqueViolation(ErrUserNotFound) = true, want false")
	}

	col, ok := uniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"))
	if !ok || col != "username" {
		t.Errorf("uniqueViolation(sqlite username) = (%q, %v), want (\"username\", true)", col, ok)
	}

	col, ok = uniqueViolation(errors.New("Error 1062 (23000): Duplicate entry 'ana@example.com' for key 'users.email'"))
	if !ok || col != "email" {
		t.Errorf("uniqueViolation(mysql email) = (%q, %v), want (\"email\", true)", col, ok)
	}
}

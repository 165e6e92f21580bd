package model

import "time"

// User represents a registered account in the database.
// PasswordHash is an argon2id PHC string and is never serialized.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Lastname     string
	Phone        string
	CreatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Phone    string `json:"phone"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents a successful register or login response.
type AuthResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

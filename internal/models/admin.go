package models

import (
	"time"
)

// Admin is the single administrative account type
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Email        string    `json:"email" db:"email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AdminSummary is the public part of an admin returned after login
type AdminSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Summary strips credentials from an admin
func (a *Admin) Summary() AdminSummary {
	return AdminSummary{ID: a.ID, Username: a.Username, Email: a.Email}
}

// LoginRequest represents a login request body
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      AdminSummary `json:"user"`
}

package models

import (
	"time"
)

// User represents an account that can authenticate against the API
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CreateUserRequest carries the fields needed to provision a user
type CreateUserRequest struct {
	Email    string
	Name     string
	Password string
	IsAdmin  bool
}

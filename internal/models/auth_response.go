package models

import "time"

// UserView is the public projection of a user. The password hash is never
// part of it.
type UserView struct {
	ID        string    `json:"id"` // UUID
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string   `json:"token"` // JWT token
	User  UserView `json:"user"`
}

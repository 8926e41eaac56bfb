package models

import "time"

// CreateDreamRequest represents the request body for creating a dream.
// Missing optional fields get their defaults in the service.
type CreateDreamRequest struct {
	Title   string     `json:"title" binding:"required"`
	Content string     `json:"content" binding:"required"`
	Date    *time.Time `json:"date,omitempty"`
	Mood    *string    `json:"mood,omitempty"`
	Tags    []string   `json:"tags,omitempty"`
	IsLucid *bool      `json:"isLucid,omitempty"`
}

// UpdateDreamRequest is the fixed allow-list of fields a dream update may
// change. Pointers distinguish "not sent" from zero values.
type UpdateDreamRequest struct {
	Title      *string    `json:"title,omitempty"`
	Content    *string    `json:"content,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Mood       *string    `json:"mood,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	IsLucid    *bool      `json:"isLucid,omitempty"`
	IsFavorite *bool      `json:"isFavorite,omitempty"`
}

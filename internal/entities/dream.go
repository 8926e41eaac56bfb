package entities

import "time"

// Mood classifies how a dream felt. Closed set, checked at the service
// boundary before anything reaches the database.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodScared   Mood = "scared"
	MoodConfused Mood = "confused"
	MoodExcited  Mood = "excited"
	MoodNeutral  Mood = "neutral"
)

// IsValid reports whether m is one of the six named moods.
func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodScared, MoodConfused, MoodExcited, MoodNeutral:
		return true
	}
	return false
}

// Dream represents a journal entry in the database
type Dream struct {
	ID         string    `json:"id"` // UUID
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Date       time.Time `json:"date"`
	Mood       Mood      `json:"mood"`
	Tags       []string  `json:"tags"`
	IsLucid    bool      `json:"isLucid"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

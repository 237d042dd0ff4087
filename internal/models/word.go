package models

import "time"

// Difficulty tiers assigned to vocabulary words
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// ValidDifficulty reports whether level is a known difficulty tier
func ValidDifficulty(level string) bool {
	switch level {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Word represents a vocabulary entry
type Word struct {
	ID              int64     `json:"id"`
	Word            string    `json:"word"`
	Definition      string    `json:"definition"`
	DifficultyLevel string    `json:"difficulty_level"`
	CreatedAt       time.Time `json:"created_at"`
}

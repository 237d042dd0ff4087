package models

import "time"

// DashboardStats holds the day streak and total learning time
type DashboardStats struct {
	DayStreak      int    `json:"day_streak"`
	TotalMinutes   int    `json:"total_minutes"`
	Hours          int    `json:"hours"`
	Minutes        int    `json:"minutes"`
	TimeDisplay    string `json:"time_display"`
	PracticedToday bool   `json:"practiced_today"`
}

// Summary holds overall practice statistics
type Summary struct {
	TotalPractices      int            `json:"total_practices"`
	AverageScore        float64        `json:"average_score"`
	TotalWordsPracticed int            `json:"total_words_practiced"`
	LevelDistribution   map[string]int `json:"level_distribution"`
}

// PracticeHistoryEntry is a practice session joined with its word's details.
// PracticedAt is a YYYY-MM-DDTHH:MM:SS string, nil when the timestamp is
// absent.
type PracticeHistoryEntry struct {
	ID              int64   `json:"id"`
	Word            string  `json:"word"`
	DifficultyLevel string  `json:"difficulty_level"`
	Score           float64 `json:"score"`
	UserSentence    string  `json:"user_sentence"`
	Feedback        string  `json:"feedback"`
	PracticedAt     *string `json:"practiced_at"`
}

// HistoryEntry is the narrow history view of a practice session
type HistoryEntry struct {
	ID           int64     `json:"id"`
	Word         string    `json:"word"`
	UserSentence string    `json:"user_sentence"`
	Score        float64   `json:"score"`
	Feedback     string    `json:"feedback"`
	PracticedAt  time.Time `json:"practiced_at"`
}

package models

import "time"

// PracticeSession represents one scored attempt at using a word in a sentence.
// Score is nil until the session has been scored; when present it lies in
// [0.0, 10.0] with one decimal of precision.
type PracticeSession struct {
	ID                int64     `json:"id"`
	WordID            int64     `json:"word_id"`
	UserSentence      string    `json:"user_sentence"`
	Score             *float64  `json:"score"`
	Feedback          string    `json:"feedback"`
	CorrectedSentence string    `json:"corrected_sentence"`
	PracticedAt       time.Time `json:"practiced_at"`
}

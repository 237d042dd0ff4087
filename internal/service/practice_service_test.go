package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vocabpractice/internal/repository"
	"vocabpractice/internal/scoring"
)

// stubScorer returns a fixed result and records what it was asked to score
type stubScorer struct {
	result         scoring.ScoreResult
	gotSentence    string
	gotTargetWord  string
	gotDifficulty  string
}

func (s *stubScorer) Score(ctx context.Context, sentence, targetWord, difficulty string) scoring.ScoreResult {
	s.gotSentence = sentence
	s.gotTargetWord = targetWord
	s.gotDifficulty = difficulty
	return s.result
}

func TestSubmitSentencePersistsSession(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database-backed test in short mode")
	}

	db := newTestDB(t)
	wordRepo := repository.NewWordRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)

	word, err := wordRepo.Create("ephemeral", "Lasting for a very short time.", "Advanced")
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	scorer := &stubScorer{result: scoring.ScoreResult{
		Score:             7.5,
		Level:             "Advanced",
		Suggestion:        "Well constructed sentence",
		CorrectedSentence: "The ephemeral beauty of the sunset stunned us all.",
	}}

	svc := NewPracticeService(practiceRepo, wordRepo, scorer, testZone)
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 10, 14, 30, 0, 0, testZone)
	}

	result, session, err := svc.SubmitSentence(context.Background(), word.ID, "", "The ephemeral beauty of the sunset stunned us", "")
	if err != nil {
		t.Fatalf("SubmitSentence failed: %v", err)
	}

	if result.Score != 7.5 {
		t.Errorf("result score = %v, want 7.5", result.Score)
	}
	if scorer.gotTargetWord != "ephemeral" {
		t.Errorf("scorer target word = %q, want the stored word text", scorer.gotTargetWord)
	}
	if scorer.gotDifficulty != "Advanced" {
		t.Errorf("scorer difficulty = %q, want the word's own tier", scorer.gotDifficulty)
	}

	stored, err := practiceRepo.GetSessionByID(session.ID)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if stored.WordID != word.ID {
		t.Errorf("stored word id = %d, want %d", stored.WordID, word.ID)
	}
	if stored.Score == nil || *stored.Score != 7.5 {
		t.Errorf("stored score = %v, want 7.5", stored.Score)
	}
	if stored.Feedback != "Well constructed sentence" {
		t.Errorf("stored feedback = %q", stored.Feedback)
	}
	if got := stored.PracticedAt.Format("2006-01-02"); got != "2024-06-10" {
		t.Errorf("stored practice date = %q, want 2024-06-10", got)
	}
}

func TestSubmitSentenceResolvesWordByText(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database-backed test in short mode")
	}

	db := newTestDB(t)
	wordRepo := repository.NewWordRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)

	if _, err := wordRepo.Create("happy", "Feeling or showing pleasure.", "Beginner"); err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	scorer := &stubScorer{result: scoring.ScoreResult{Score: 8.0, Level: "Intermediate"}}
	svc := NewPracticeService(practiceRepo, wordRepo, scorer, testZone)

	// Submitted difficulty is valid, so it overrides the word's tier
	_, session, err := svc.SubmitSentence(context.Background(), 0, "happy", "I am happy today", "Intermediate")
	if err != nil {
		t.Fatalf("SubmitSentence failed: %v", err)
	}
	if session == nil {
		t.Fatal("expected a persisted session")
	}
	if scorer.gotDifficulty != "Intermediate" {
		t.Errorf("scorer difficulty = %q, want the submitted tier", scorer.gotDifficulty)
	}
}

func TestSubmitSentenceValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database-backed test in short mode")
	}

	db := newTestDB(t)
	wordRepo := repository.NewWordRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)
	svc := NewPracticeService(practiceRepo, wordRepo, &stubScorer{}, testZone)

	tests := []struct {
		name       string
		wordID     int64
		targetWord string
		sentence   string
		wantErr    error
	}{
		{"empty sentence", 1, "", "", ErrEmptySentence},
		{"no word reference", 0, "", "a sentence", ErrMissingWord},
		{"unknown word id", 999, "", "a sentence", ErrWordNotFound},
		{"unknown word text", 0, "nonexistent", "a sentence", ErrWordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.SubmitSentence(context.Background(), tt.wordID, tt.targetWord, tt.sentence, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

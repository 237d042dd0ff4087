package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vocabpractice/internal/models"
	"vocabpractice/internal/repository"
	"vocabpractice/internal/scoring"
)

var (
	ErrEmptySentence = errors.New("sentence is required")
	ErrMissingWord   = errors.New("word_id or target_word is required")
	ErrWordNotFound  = errors.New("word not found")
)

// Scorer evaluates a practice sentence. Satisfied by *scoring.Client.
type Scorer interface {
	Score(ctx context.Context, sentence, targetWord, difficulty string) scoring.ScoreResult
}

// PracticeService scores submitted sentences and records the resulting
// practice sessions
type PracticeService struct {
	practiceRepo *repository.PracticeRepository
	wordRepo     *repository.WordRepository
	scorer       Scorer
	timeZone     *time.Location
	now          func() time.Time
}

// NewPracticeService creates a new practice service
func NewPracticeService(practiceRepo *repository.PracticeRepository, wordRepo *repository.WordRepository, scorer Scorer, timeZone *time.Location) *PracticeService {
	return &PracticeService{
		practiceRepo: practiceRepo,
		wordRepo:     wordRepo,
		scorer:       scorer,
		timeZone:     timeZone,
		now:          time.Now,
	}
}

// SubmitSentence scores a submission and persists it as a practice session.
// The word is resolved by ID when given, otherwise by target word text.
// Scoring itself cannot fail (the scorer falls back internally), so errors
// here are validation or persistence failures only.
func (s *PracticeService) SubmitSentence(ctx context.Context, wordID int64, targetWord, sentence, difficulty string) (scoring.ScoreResult, *models.PracticeSession, error) {
	if sentence == "" {
		return scoring.ScoreResult{}, nil, ErrEmptySentence
	}

	word, err := s.resolveWord(wordID, targetWord)
	if err != nil {
		return scoring.ScoreResult{}, nil, err
	}

	// The submitted difficulty wins when valid; otherwise score against the
	// word's own tier
	if !models.ValidDifficulty(difficulty) {
		difficulty = word.DifficultyLevel
	}

	result := s.scorer.Score(ctx, sentence, word.Word, difficulty)

	practicedAt := s.now().In(s.timeZone)
	session, err := s.practiceRepo.CreateSession(word.ID, sentence, result.Score, result.Suggestion, result.CorrectedSentence, practicedAt)
	if err != nil {
		return scoring.ScoreResult{}, nil, err
	}

	return result, session, nil
}

func (s *PracticeService) resolveWord(wordID int64, targetWord string) (*models.Word, error) {
	switch {
	case wordID > 0:
		word, err := s.wordRepo.GetByID(wordID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWordNotFound
		}
		return word, err
	case targetWord != "":
		word, err := s.wordRepo.GetByText(targetWord)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWordNotFound
		}
		return word, err
	default:
		return nil, ErrMissingWord
	}
}

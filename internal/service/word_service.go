package service

import (
	"database/sql"
	"errors"
	"strings"

	"vocabpractice/internal/models"
	"vocabpractice/internal/repository"
)

var (
	ErrEmptyWord         = errors.New("word is required")
	ErrInvalidDifficulty = errors.New("unknown difficulty level")
	ErrWordExists        = errors.New("word already exists")
	ErrNoWords           = errors.New("no words available")
)

// WordService handles vocabulary word business logic
type WordService struct {
	wordRepo *repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo *repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// CreateWord adds a new vocabulary word. The difficulty defaults to
// Beginner when empty; word text must be unique.
func (s *WordService) CreateWord(word, definition, difficultyLevel string) (*models.Word, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyWord
	}

	if difficultyLevel == "" {
		difficultyLevel = models.DifficultyBeginner
	}
	if !models.ValidDifficulty(difficultyLevel) {
		return nil, ErrInvalidDifficulty
	}

	_, err := s.wordRepo.GetByText(word)
	if err == nil {
		return nil, ErrWordExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return s.wordRepo.Create(word, definition, difficultyLevel)
}

// GetAllWords returns every vocabulary word, oldest first
func (s *WordService) GetAllWords() ([]models.Word, error) {
	words, err := s.wordRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []models.Word{}
	}
	return words, nil
}

// GetRandomWord returns a uniformly random vocabulary word
func (s *WordService) GetRandomWord() (*models.Word, error) {
	word, err := s.wordRepo.GetRandom()
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoWords
	}
	return word, err
}

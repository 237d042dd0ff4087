package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"vocabpractice/internal/service"
)

// WordHandler handles vocabulary word HTTP requests
type WordHandler struct {
	wordService *service.WordService
}

// NewWordHandler creates a new word handler
func NewWordHandler(wordService *service.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// GetRandomWord returns a random vocabulary word
func (h *WordHandler) GetRandomWord(w http.ResponseWriter, r *http.Request) {
	word, err := h.wordService.GetRandomWord()
	if err != nil {
		if errors.Is(err, service.ErrNoWords) {
			respondWithError(w, http.StatusNotFound, "No words available", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch word", "Error fetching random word", err)
		return
	}

	respondJSON(w, http.StatusOK, word)
}

// ListWords returns all vocabulary words
func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.wordService.GetAllWords()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch words", "Error listing words", err)
		return
	}

	respondJSON(w, http.StatusOK, words)
}

// createWordRequest is the POST /api/words payload
type createWordRequest struct {
	Word            string `json:"word"`
	Definition      string `json:"definition"`
	DifficultyLevel string `json:"difficulty_level"`
}

// CreateWord adds a new vocabulary word
func (h *WordHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	word, err := h.wordService.CreateWord(req.Word, req.Definition, req.DifficultyLevel)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyWord), errors.Is(err, service.ErrInvalidDifficulty):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		case errors.Is(err, service.ErrWordExists):
			respondWithError(w, http.StatusConflict, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to create word", "Error creating word", err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, word)
}

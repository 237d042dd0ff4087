package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vocabpractice/internal/service"
)

// PracticeHandler handles sentence submission HTTP requests
type PracticeHandler struct {
	practiceService *service.PracticeService
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(practiceService *service.PracticeService) *PracticeHandler {
	return &PracticeHandler{practiceService: practiceService}
}

// validateSentenceRequest is the POST /api/validate-sentence payload.
// The word can be referenced by id or by target_word text.
type validateSentenceRequest struct {
	WordID     int64  `json:"word_id"`
	TargetWord string `json:"target_word"`
	Sentence   string `json:"sentence"`
	Difficulty string `json:"difficulty"`
}

// ValidateSentence scores a submitted sentence, records the practice
// session, and returns the score result
func (h *PracticeHandler) ValidateSentence(w http.ResponseWriter, r *http.Request) {
	var req validateSentenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	result, _, err := h.practiceService.SubmitSentence(r.Context(), req.WordID, req.TargetWord, strings.TrimSpace(req.Sentence), req.Difficulty)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptySentence), errors.Is(err, service.ErrMissingWord):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		case errors.Is(err, service.ErrWordNotFound):
			respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to validate sentence", "Error submitting sentence", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

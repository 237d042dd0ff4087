package handlers

import (
	"net/http"
	"strconv"

	"vocabpractice/internal/service"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard returns the day streak and total learning time
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Dashboard()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute dashboard stats", "Error computing dashboard stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// Summary returns the overall practice statistics
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.Summary()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute summary", "Error computing summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// PracticeHistory returns the wide history view (default limit 50)
func (h *StatsHandler) PracticeHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.statsService.PracticeHistory(limitParam(r))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch practice history", "Error fetching practice history", err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// History returns the narrow history view (default limit 10)
func (h *StatsHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.statsService.History(limitParam(r))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch history", "Error fetching history", err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// limitParam parses the limit query parameter; anything invalid or
// non-positive yields 0 so the service applies its default
func limitParam(r *http.Request) int {
	value := r.URL.Query().Get("limit")
	if value == "" {
		return 0
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

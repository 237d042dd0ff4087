package handlers

import "net/http"

// Home returns API metadata and the endpoint map
func Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Vocabulary Practice API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"random_word":      "/api/word",
			"validate":         "/api/validate-sentence",
			"dashboard_stats":  "/api/dashboard-stats",
			"practice_history": "/api/practice-history",
			"summary":          "/api/summary",
			"history":          "/api/history",
		},
	})
}

// Package scoring evaluates user practice sentences. The primary path is an
// external AI scoring webhook; any failure there falls back to a
// deterministic rule-based scorer, so scoring itself never fails.
package scoring

// ScoreResult is the outcome of scoring a practice sentence
type ScoreResult struct {
	Score             float64 `json:"score"`
	Level             string  `json:"level"`
	Suggestion        string  `json:"suggestion"`
	CorrectedSentence string  `json:"corrected_sentence"`
}

package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// defaultSuggestion is returned when the webhook responds without one
const defaultSuggestion = "ไม่สามารถวิเคราะห์ได้"

// Client scores sentences through the external webhook
type Client struct {
	webhookURL string
	httpClient *http.Client
	fallback   *FallbackScorer
}

// NewClient creates a scoring client for the given webhook URL.
// The timeout bounds the whole webhook call; it does not apply to the
// fallback path.
func NewClient(webhookURL string, timeout time.Duration, fallback *FallbackScorer) *Client {
	if fallback == nil {
		fallback = NewFallbackScorer(nil)
	}
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		fallback:   fallback,
	}
}

// scoreRequest is the webhook request payload
type scoreRequest struct {
	Sentence   string `json:"sentence"`
	Word       string `json:"word"`
	Difficulty string `json:"difficulty"`
}

// scoreResponse is the webhook response payload. All fields are optional;
// pointers distinguish absent fields from present-but-empty ones.
type scoreResponse struct {
	Score             *float64 `json:"score"`
	Level             *string  `json:"level"`
	Suggestion        *string  `json:"suggestion"`
	CorrectedSentence *string  `json:"corrected_sentence"`
}

// Score evaluates a sentence against a target word. The webhook is tried
// first; transport errors, non-2xx statuses, and malformed payloads all fall
// back to the rule-based scorer, so the result is always usable.
func (c *Client) Score(ctx context.Context, sentence, targetWord, difficulty string) ScoreResult {
	result, err := c.callWebhook(ctx, sentence, targetWord, difficulty)
	if err != nil {
		log.Printf("Scoring webhook error, using fallback: %v", err)
		return c.fallback.Score(sentence, targetWord, difficulty)
	}
	return result
}

// callWebhook posts the sentence to the scoring webhook and applies field
// defaults to the response
func (c *Client) callWebhook(ctx context.Context, sentence, targetWord, difficulty string) (ScoreResult, error) {
	payload, err := json.Marshal(scoreRequest{
		Sentence:   sentence,
		Word:       targetWord,
		Difficulty: difficulty,
	})
	if err != nil {
		return ScoreResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return ScoreResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ScoreResult{}, fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	var parsed scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ScoreResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	result := ScoreResult{
		Score:             0,
		Level:             difficulty,
		Suggestion:        defaultSuggestion,
		CorrectedSentence: sentence,
	}
	if parsed.Score != nil {
		result.Score = clampScore(*parsed.Score)
	}
	if parsed.Level != nil {
		result.Level = *parsed.Level
	}
	if parsed.Suggestion != nil {
		result.Suggestion = *parsed.Suggestion
	}
	if parsed.CorrectedSentence != nil {
		result.CorrectedSentence = *parsed.CorrectedSentence
	}

	return result, nil
}

// clampScore bounds a webhook-supplied score to the valid [0, 10] range
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
	"github.com/charmbracelet/log"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// NewClient creates a new Gemini commentary client.
func NewClient(apiKey, model string) Commentator {
	return &APIClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// Ensure APIClient implements the Commentator interface.
var _ Commentator = (*APIClient)(nil)

// GenerateCommentary asks the model for a short caster-style summary of the
// tournament. On any failure it returns a fixed fallback string together
// with the underlying error; the text is always safe to display.
func (c *APIClient) GenerateCommentary(ctx context.Context, stats []standings.PlayerStats, recentMatches []tournament.Match, players []tournament.Player) (string, error) {
	prompt := BuildPrompt(stats, recentMatches, players)

	text, err := c.generateContent(ctx, prompt)
	if err != nil {
		log.Error("Commentary generation failed", "error", err)
		return FallbackFailure, err
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("Commentary service returned no text")
		return FallbackEmptyResponse, nil
	}
	return text, nil
}

func (c *APIClient) generateContent(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.model)

	payload := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	log.Debug("Requesting commentary", "model", c.model)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("commentary request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("commentary service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// Package ollama provides an adapter for a local Ollama instance.
// It implements vibe interpretation by sending the mood text to the chat
// endpoint with a strict JSON schema and parsing the structured response
// into a validated domain AudioProfile.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
	"github.com/soundcheck-labs/vibecraft/internal/core/ports"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.1"

	// genreSampleSize caps how many whitelist genres are embedded in the
	// system prompt to keep it short.
	genreSampleSize = 50
)

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ ports.VibeInterpreter = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Format   string         `json:"format,omitempty"`
	Options  map[string]any `json:"options,omitempty"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error,omitempty"`
}

func NewClient(baseURL, model string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// InterpretVibe maps the vibe text to audio-feature targets. The response is
// validated before it is returned; a schema mismatch wraps
// domain.ErrInvalidProfile rather than trusting provider output.
func (c *Client) InterpretVibe(ctx context.Context, vibe string, genres []string) (domain.AudioProfile, error) {
	content, err := c.chat(ctx, interpretSystemPrompt(genres), vibe, true)
	if err != nil {
		return domain.AudioProfile{}, err
	}

	profile, err := domain.ParseAudioProfile([]byte(content))
	if err != nil {
		return domain.AudioProfile{}, fmt.Errorf("ollama: %w", err)
	}
	return profile, nil
}

// SuggestPlaylistName asks the model for a short creative playlist name.
func (c *Client) SuggestPlaylistName(ctx context.Context, vibe string) (string, error) {
	content, err := c.chat(ctx, namePrompt, vibe, false)
	if err != nil {
		return "", err
	}

	name := domain.SanitizePlaylistName(strings.Trim(strings.TrimSpace(content), `"“”`))
	return name, nil
}

func (c *Client) chat(ctx context.Context, system, user string, jsonFormat bool) (string, error) {
	payload := chatRequest{
		Model:   c.model,
		Stream:  false,
		Options: map[string]any{"temperature": 0.2},
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if jsonFormat {
		payload.Format = "json"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama: %s", parsed.Error)
	}
	if strings.TrimSpace(parsed.Message.Content) == "" {
		return "", fmt.Errorf("ollama: empty response")
	}

	return parsed.Message.Content, nil
}

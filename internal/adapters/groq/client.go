// Package groq provides an adapter for the Groq cloud API. Groq speaks the
// OpenAI chat-completions dialect, so the adapter posts to /chat/completions
// with a JSON response format and parses the structured content into a
// validated domain AudioProfile.
package groq

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
	"github.com/soundcheck-labs/vibecraft/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"
)

type Client struct {
	rest  *resty.Client
	model string
}

var _ ports.VibeInterpreter = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{rest: rest, model: model}
}

// InterpretVibe maps the vibe text to audio-feature targets. Schema
// mismatches are validation errors, never installed downstream.
func (c *Client) InterpretVibe(ctx context.Context, vibe string, genres []string) (domain.AudioProfile, error) {
	content, err := c.chat(ctx, interpretSystemPrompt(genres), vibe, true)
	if err != nil {
		return domain.AudioProfile{}, err
	}

	profile, err := domain.ParseAudioProfile([]byte(content))
	if err != nil {
		return domain.AudioProfile{}, fmt.Errorf("groq: %w", err)
	}
	return profile, nil
}

// SuggestPlaylistName asks the model for a short creative playlist name.
func (c *Client) SuggestPlaylistName(ctx context.Context, vibe string) (string, error) {
	content, err := c.chat(ctx, namePrompt, vibe, false)
	if err != nil {
		return "", err
	}
	return domain.SanitizePlaylistName(strings.Trim(strings.TrimSpace(content), `"“”`)), nil
}

func (c *Client) chat(ctx context.Context, system, user string, jsonFormat bool) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if jsonFormat {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var parsed chatResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&parsed).
		SetError(&parsed).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("groq: request failed: %w", err)
	}

	if resp.IsError() {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("groq: %s (status %d)", parsed.Error.Message, resp.StatusCode())
		}
		return "", fmt.Errorf("groq: unexpected status %d", resp.StatusCode())
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("groq: empty response")
	}

	return parsed.Choices[0].Message.Content, nil
}

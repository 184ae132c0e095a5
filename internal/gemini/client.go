// Package gemini wraps the Google Gemini SDK behind the single operation the
// relay needs: send one prompt, get the generated text back.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Client sends single-shot prompts to the Gemini generateContent API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a Client before the underlying SDK client is built.
type Option func(*genai.ClientConfig)

// WithBaseURL overrides the Gemini API endpoint. Used by tests to point the
// client at a local server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = strings.TrimSpace(baseURL)
	}
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPClient = httpClient
	}
}

// NewClient creates a Gemini-backed client for the given model. The API key
// and model are fixed for the lifetime of the client.
func NewClient(ctx context.Context, apiKey, model string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key must not be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini: model must not be empty")
	}

	cfg := &genai.ClientConfig{
		APIKey: apiKey,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Generate sends the prompt as a single user message with no history, no
// system instruction and default generation parameters, and returns the
// generated text. An empty string with a nil error means the model produced
// no text; a non-nil error covers network, auth and API failures. No retry
// and no timeout beyond the SDK's own defaults.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	return extractText(resp), nil
}

// extractText concatenates the text parts of the first candidate. Blocked or
// empty responses yield an empty string, which the caller treats as a
// generation without text rather than an error.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String()
}

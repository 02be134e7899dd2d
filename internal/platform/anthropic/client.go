package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/promptgen-api/internal/generation"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	messagesPath     = "/v1/messages"
	apiVersionHeader = "2023-06-01"
)

// Client implements generation.Generator using Anthropic's Messages API.
// It holds only the immutable credential and transport, so a single instance
// is safe to reuse across many sequential or concurrent calls.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Anthropic API client.
//
// The API key is required; an empty key returns generation.ErrInvalidConfig,
// which is the one fatal-at-startup condition in the system. The httpClient
// and baseURL parameters exist for tests and default to http.DefaultClient
// and the public API endpoint when zero-valued.
func NewClient(apiKey string, logger *slog.Logger, httpClient *http.Client, baseURL string) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if apiKey == "" {
		return nil, fmt.Errorf(
			"%w: Anthropic API key is required. Set ANTHROPIC_API_KEY or pass a key explicitly",
			generation.ErrInvalidConfig)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Generate issues one synchronous Messages API call. It performs a single
// attempt: any network fault, provider error envelope, or malformed response
// is returned as an error for the caller to convert into a failure result.
func (c *Client) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	body, err := json.Marshal(messagesRequest{
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		System:      req.SystemPrompt,
		Messages: []message{
			{Role: "user", Content: req.UserMessage},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersionHeader)

	c.logger.DebugContext(ctx, "Calling Anthropic Messages API",
		"model", req.Model,
		"max_tokens", req.MaxTokens)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "Failed to close response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Error bodies are not guaranteed to be the JSON envelope: proxies and
	// gateways answer with HTML or plain text. On a non-2xx status the
	// envelope's message is used when present, the status code otherwise.
	var parsed messagesResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if decodeErr == nil && parsed.Error != nil {
		return nil, fmt.Errorf("%w: %s", generation.ErrProviderError, parsed.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", generation.ErrProviderError, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", generation.ErrInvalidResponse, decodeErr)
	}

	// First text block of the response content; an absent content array
	// yields an empty string, which is a defined degenerate case.
	text := ""
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}

	out := &generation.Response{Text: text}
	if parsed.Usage != nil {
		out.Usage = &generation.Usage{
			InputTokens:  parsed.Usage.InputTokens,
			OutputTokens: parsed.Usage.OutputTokens,
		}
	}

	c.logger.DebugContext(ctx, "Anthropic Messages API call succeeded",
		"response_length", len(text),
		"usage_present", parsed.Usage != nil)

	return out, nil
}

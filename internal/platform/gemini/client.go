// Package gemini provides an implementation of the generation interface
// using Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/promptgen-api/internal/generation"
	"google.golang.org/genai"
)

// Client implements generation.Generator using the Gemini API. It is the
// alternative provider adapter, selected via the llm.provider setting.
type Client struct {
	logger *slog.Logger
	client *genai.Client
}

// NewClient creates a new Gemini API client.
//
// The API key is required; an empty key returns generation.ErrInvalidConfig.
func NewClient(ctx context.Context, apiKey string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if apiKey == "" {
		return nil, fmt.Errorf(
			"%w: Gemini API key is required. Set GEMINI_API_KEY or pass a key explicitly",
			generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Client{
		logger: logger,
		client: client,
	}, nil
}

// Generate issues one synchronous GenerateContent call. Single attempt, no
// retry; any API fault or empty candidate set is returned as an error.
func (c *Client) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens:   int32(req.MaxTokens),
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
	}

	c.logger.DebugContext(ctx, "Calling Gemini GenerateContent",
		"model", req.Model,
		"max_tokens", req.MaxTokens)

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.UserMessage), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrProviderError, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	out := &generation.Response{Text: resp.Text()}
	if resp.UsageMetadata != nil {
		out.Usage = &generation.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	c.logger.DebugContext(ctx, "Gemini GenerateContent call succeeded",
		"response_length", len(out.Text),
		"usage_present", out.Usage != nil)

	return out, nil
}

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/promptgen-api/internal/api"
	"github.com/phrazzld/promptgen-api/internal/config"
	"github.com/phrazzld/promptgen-api/internal/platform/anthropic"
	"github.com/phrazzld/promptgen-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication wires a full application against a stub provider
// endpoint, mirroring the startup path without loading real configuration.
func newTestApplication(t *testing.T, providerURL string) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		LLM: config.LLMConfig{
			Provider:        "anthropic",
			AnthropicAPIKey: "test-key",
			ModelName:       "claude-3-5-sonnet-20241022",
			MaxOutputTokens: 2048,
			Temperature:     0.7,
			BaseURL:         providerURL,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	generator, err := anthropic.NewClient(cfg.LLM.AnthropicAPIKey, logger, nil, cfg.LLM.BaseURL)
	require.NoError(t, err)

	promptService, err := service.NewPromptService(generator, cfg.LLM, logger)
	require.NoError(t, err)

	return &application{
		config:        cfg,
		logger:        logger,
		promptService: promptService,
	}
}

// TestGeneratePromptEndToEnd exercises router, handler, service, and the
// Anthropic wire client against a stub provider.
func TestGeneratePromptEndToEnd(t *testing.T) {
	providerCalls := 0
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		providerCalls++
		assert.Equal(t, "/v1/messages", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"content": [{"type": "text", "text": "Write a story..."}],
			"usage": {"input_tokens": 5, "output_tokens": 50}
		}`))
	}))
	defer provider.Close()

	app := newTestApplication(t, provider.URL)
	router := app.setupRouter()

	body := `{"user_input": "a story about a lighthouse", "prompt_type": "creative"}`
	req := httptest.NewRequest(http.MethodPost, "/generate-prompt", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, providerCalls)

	var resp api.GeneratePromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Write a story...", resp.Prompt)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "claude-3-5-sonnet-20241022", resp.Metadata.Model)
	assert.Equal(t, "creative", resp.Metadata.PromptType)
	require.NotNil(t, resp.Metadata.TokensUsed)
	assert.Equal(t, 55, *resp.Metadata.TokensUsed)
}

// TestGeneratePromptMissingFieldEndToEnd verifies the required-field check
// rejects the request before the provider is reached.
func TestGeneratePromptMissingFieldEndToEnd(t *testing.T) {
	providerCalls := 0
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		providerCalls++
	}))
	defer provider.Close()

	app := newTestApplication(t, provider.URL)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/generate-prompt", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, providerCalls, "Provider must not be invoked for an invalid request")

	var resp api.GeneratePromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required field: user_input", resp.Error)
}

func TestRouterAuxiliaryRoutes(t *testing.T) {
	app := newTestApplication(t, "http://localhost:0")
	router := app.setupRouter()

	t.Run("index", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "Prompt Generator")
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("prompt_types", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/prompt-types", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp api.PromptTypesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.PromptTypes, 4)
	})

	t.Run("unknown_route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Endpoint not found")
	})

	t.Run("wrong_method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generate-prompt", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHealthReportsErrorWhenGeneratorMissing(t *testing.T) {
	app := &application{
		config: &config.Config{Server: config.ServerConfig{Port: 8080, LogLevel: "error"}},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	router := app.setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

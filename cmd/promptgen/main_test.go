package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv sets environment variables for the duration of a test.
func setEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// stubProvider starts an httptest server answering like the Messages API.
func stubProvider(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 {
			w.WriteHeader(status)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--version"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "promptgen 1.0.0")
}

func TestRunMissingCredential(t *testing.T) {
	setEnv(t, map[string]string{
		"ANTHROPIC_API_KEY":               "",
		"PROMPTGEN_LLM_ANTHROPIC_API_KEY": "",
	})

	var stdout, stderr bytes.Buffer
	code := run([]string{"-i", "some request"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error initializing generator")
}

func TestRunSinglePromptMode(t *testing.T) {
	provider := stubProvider(t, `{
		"content": [{"type": "text", "text": "Write a story about a lighthouse keeper."}],
		"usage": {"input_tokens": 5, "output_tokens": 50}
	}`, 0)

	setEnv(t, map[string]string{
		"ANTHROPIC_API_KEY":      "test-key",
		"PROMPTGEN_LLM_BASE_URL": provider.URL,
		"PROMPTGEN_LLM_PROVIDER": "anthropic",
	})

	var stdout, stderr bytes.Buffer
	code := run([]string{"-i", "a story about a lighthouse", "-t", "creative", "-v"},
		strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Write a story about a lighthouse keeper.")
	assert.Contains(t, stderr.String(), "# Model: claude-3-5-sonnet-20241022")
	assert.Contains(t, stderr.String(), "# Type: creative")
	assert.Contains(t, stderr.String(), "# Tokens: 55")
}

func TestRunGenerationFailure(t *testing.T) {
	provider := stubProvider(t, `{"error": {"type": "overloaded_error", "message": "Overloaded"}}`,
		http.StatusServiceUnavailable)

	setEnv(t, map[string]string{
		"ANTHROPIC_API_KEY":      "test-key",
		"PROMPTGEN_LLM_BASE_URL": provider.URL,
	})

	var stdout, stderr bytes.Buffer
	code := run([]string{"-i", "a story"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Overloaded")
	assert.NotContains(t, stdout.String(), "Overloaded", "Errors must not go to stdout")
}

func TestRunUnknownTypeWarnsAndFallsBack(t *testing.T) {
	var gotBody bytes.Buffer
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := gotBody.ReadFrom(r.Body)
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "ok"}]}`))
	}))
	t.Cleanup(provider.Close)

	setEnv(t, map[string]string{
		"ANTHROPIC_API_KEY":      "test-key",
		"PROMPTGEN_LLM_BASE_URL": provider.URL,
	})

	var stdout, stderr bytes.Buffer
	code := run([]string{"-i", "input", "-t", "poetry"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), `unknown prompt type "poetry"`)
	assert.Contains(t, gotBody.String(), "expert prompt engineer",
		"Unknown types should be sent with the general template")
}

func TestRunInteractiveMode(t *testing.T) {
	provider := stubProvider(t, `{
		"content": [{"type": "text", "text": "An imaginative prompt."}],
		"usage": {"input_tokens": 4, "output_tokens": 20}
	}`, 0)

	setEnv(t, map[string]string{
		"ANTHROPIC_API_KEY":      "test-key",
		"PROMPTGEN_LLM_BASE_URL": provider.URL,
	})

	// One full iteration (request, type 2, no context, no instructions),
	// then quit.
	stdin := strings.NewReader("a story about a lighthouse\n2\n\n\nquit\n")

	var stdout, stderr bytes.Buffer
	code := run(nil, stdin, &stdout, &stderr)

	assert.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, "Interactive Mode")
	assert.Contains(t, out, "An imaginative prompt.")
	assert.Contains(t, out, "Type: creative")
	assert.Contains(t, out, "Tokens: 24")
	assert.Contains(t, out, "Goodbye!")
}

func TestRunInteractiveModeExitKeywords(t *testing.T) {
	setEnv(t, map[string]string{
		"ANTHROPIC_API_KEY": "test-key",
	})

	for _, keyword := range []string{"quit", "exit", "q", "Q"} {
		var stdout, stderr bytes.Buffer
		code := run(nil, strings.NewReader(keyword+"\n"), &stdout, &stderr)
		assert.Equal(t, 0, code, "Keyword %q should exit cleanly", keyword)
		assert.Contains(t, stdout.String(), "Goodbye!")
	}
}

func TestPromptTypeFromChoice(t *testing.T) {
	cases := map[string]string{
		"1":  "general",
		"2":  "creative",
		"3":  "technical",
		"4":  "image",
		"":   "general",
		"9":  "general",
		"no": "general",
	}
	for choice, expected := range cases {
		assert.Equal(t, expected, promptTypeFromChoice(choice), "choice %q", choice)
	}
}

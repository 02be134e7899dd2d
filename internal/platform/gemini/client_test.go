package gemini

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/promptgen-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Construction-level tests only: exercising GenerateContent requires a live
// Gemini endpoint, and the service-level behavior is covered against the
// Generator interface with a stub.

func TestNewClient(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("missing_api_key", func(t *testing.T) {
		t.Parallel()

		client, err := NewClient(context.Background(), "", logger)
		assert.Nil(t, client)
		require.Error(t, err)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("nil_logger", func(t *testing.T) {
		t.Parallel()

		client, err := NewClient(context.Background(), "test-key", nil)
		assert.Nil(t, client)
		assert.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		client, err := NewClient(context.Background(), "test-key", logger)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/promptgen-api/internal/config"
	"github.com/phrazzld/promptgen-api/internal/generation"
	"github.com/phrazzld/promptgen-api/internal/platform/anthropic"
	"github.com/phrazzld/promptgen-api/internal/platform/gemini"
	"github.com/phrazzld/promptgen-api/internal/platform/logger"
	"github.com/phrazzld/promptgen-api/internal/service"
)

// application holds the explicitly constructed dependencies of the server.
// There is no ambient singleton: every handler receives its collaborators
// from here at startup.
type application struct {
	config *config.Config
	logger *slog.Logger

	// promptService is nil when the generator could not be initialized
	// (missing provider credential). The server still starts so the health
	// endpoint can report the error state.
	promptService service.PromptService
}

// newApplication loads configuration, sets up logging, and wires the
// provider adapter and prompt service.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName)

	app := &application{
		config: cfg,
		logger: appLogger,
	}

	generator, err := buildGenerator(ctx, cfg.LLM, appLogger)
	if err != nil {
		// A missing credential is not fatal for the server: endpoints report
		// the error state until the configuration is fixed.
		appLogger.Error("Failed to initialize prompt generator", "error", err)
		return app, nil
	}

	promptService, err := service.NewPromptService(generator, cfg.LLM, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt service: %w", err)
	}
	app.promptService = promptService

	appLogger.Info("Prompt generator initialized successfully")
	return app, nil
}

// buildGenerator constructs the provider adapter selected by configuration.
func buildGenerator(
	ctx context.Context,
	cfg config.LLMConfig,
	appLogger *slog.Logger,
) (generation.Generator, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, appLogger)
	default:
		return anthropic.NewClient(cfg.AnthropicAPIKey, appLogger, nil, cfg.BaseURL)
	}
}

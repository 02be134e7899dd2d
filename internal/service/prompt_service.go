package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/promptgen-api/internal/config"
	"github.com/phrazzld/promptgen-api/internal/domain"
	"github.com/phrazzld/promptgen-api/internal/generation"
	"github.com/phrazzld/promptgen-api/internal/redact"
)

// PromptService provides prompt-generation operations.
type PromptService interface {
	// GeneratePrompt composes a provider payload from the request, issues one
	// synchronous call to the configured provider, and returns the outcome as
	// a GenerationResult. It never returns a raw provider fault: every error
	// raised during generation is converted into the failure variant here.
	GeneratePrompt(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult
}

// promptServiceImpl implements PromptService. It holds only the immutable
// LLM configuration and the provider adapter, so one instance is safe for
// concurrent use by multiple simultaneous requests.
type promptServiceImpl struct {
	generator generation.Generator
	llmConfig config.LLMConfig
	logger    *slog.Logger
}

// NewPromptService creates a new PromptService with the given provider
// adapter, LLM configuration, and logger.
func NewPromptService(
	generator generation.Generator,
	llmConfig config.LLMConfig,
	logger *slog.Logger,
) (PromptService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &promptServiceImpl{
		generator: generator,
		llmConfig: llmConfig,
		logger:    logger,
	}, nil
}

// GeneratePrompt implements PromptService.
func (s *promptServiceImpl) GeneratePrompt(
	ctx context.Context,
	req domain.GenerationRequest,
) domain.GenerationResult {
	// Request IDs correlate the log records of one generation.
	log := s.logger.With(slog.String("request_id", uuid.New().String()))

	// Missing required input is rejected before any provider call.
	if err := req.Validate(); err != nil {
		log.WarnContext(ctx, "Rejecting invalid generation request", "error", err)
		return domain.NewFailureResult(err.Error())
	}

	systemPrompt := s.resolveSystemPrompt(req)
	userMessage := generation.ComposeUserMessage(req.UserInput, req.Context)

	log.DebugContext(ctx, "Issuing generation request",
		"prompt_type", req.PromptType.String(),
		"model", s.llmConfig.ModelName,
		"has_context", req.Context != "",
		"has_custom_instructions", req.CustomInstructions != "")

	resp, err := s.generator.Generate(ctx, generation.Request{
		Model:        s.llmConfig.ModelName,
		MaxTokens:    s.llmConfig.MaxOutputTokens,
		Temperature:  s.llmConfig.Temperature,
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
	})
	if err != nil {
		// The one fault-to-result conversion point: no retry, no backoff,
		// the caller decides whether to try again. Provider faults can echo
		// request credentials, so the log record gets the redacted form.
		log.ErrorContext(ctx, "Prompt generation failed", "error", redact.Error(err))
		return domain.NewFailureResult(err.Error())
	}

	metadata := domain.GenerationMetadata{
		Model:      s.llmConfig.ModelName,
		PromptType: req.PromptType.String(),
	}
	if resp.Usage != nil {
		inputTokens := resp.Usage.InputTokens
		outputTokens := resp.Usage.OutputTokens
		totalTokens := resp.Usage.TotalTokens()
		metadata.InputTokens = &inputTokens
		metadata.OutputTokens = &outputTokens
		metadata.TokensUsed = &totalTokens
	}

	log.InfoContext(ctx, "Prompt generated",
		"prompt_type", req.PromptType.String(),
		"prompt_length", len(resp.Text),
		"usage_present", resp.Usage != nil)

	return domain.NewSuccessResult(resp.Text, metadata)
}

// resolveSystemPrompt returns the system text for the request: the override
// from configuration when set, otherwise the catalog template for the
// request's prompt type. Custom instructions are appended in either case.
func (s *promptServiceImpl) resolveSystemPrompt(req domain.GenerationRequest) string {
	if s.llmConfig.SystemPromptOverride != "" {
		return generation.AppendCustomInstructions(s.llmConfig.SystemPromptOverride, req.CustomInstructions)
	}
	return generation.BuildSystemPrompt(req.PromptType, req.CustomInstructions)
}

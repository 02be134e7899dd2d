package api

import (
	"github.com/phrazzld/promptgen-api/internal/domain"
)

// GeneratePromptRequest defines the payload for the prompt generation endpoint.
// Only user_input is required; prompt_type defaults to general and unknown
// values fall back to general rather than failing.
type GeneratePromptRequest struct {
	UserInput          string `json:"user_input"          validate:"required,min=1"`
	Context            string `json:"context"`
	PromptType         string `json:"prompt_type"`
	CustomInstructions string `json:"custom_instructions"`
}

// GenerationMetadataResponse mirrors domain.GenerationMetadata in the JSON
// response. Token fields serialize as null when the provider omitted usage.
type GenerationMetadataResponse struct {
	Model        string `json:"model"`
	PromptType   string `json:"prompt_type"`
	TokensUsed   *int   `json:"tokens_used"`
	InputTokens  *int   `json:"input_tokens"`
	OutputTokens *int   `json:"output_tokens"`
}

// GeneratePromptResponse defines the response envelope of the prompt
// generation endpoint. Exactly one of prompt/metadata or error is populated,
// matching the result variants of the prompt service.
type GeneratePromptResponse struct {
	Success  bool                        `json:"success"`
	Prompt   string                      `json:"prompt,omitempty"`
	Metadata *GenerationMetadataResponse `json:"metadata,omitempty"`
	Error    string                      `json:"error,omitempty"`
}

// HealthResponse defines the payload of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// PromptTypesResponse lists the available prompt type descriptors.
type PromptTypesResponse struct {
	PromptTypes []domain.PromptTypeDescriptor `json:"prompt_types"`
}

// resultToResponse converts a domain.GenerationResult into the JSON envelope.
func resultToResponse(result domain.GenerationResult) GeneratePromptResponse {
	resp := GeneratePromptResponse{
		Success: result.Success,
		Prompt:  result.Prompt,
		Error:   result.ErrorMessage,
	}
	if result.Metadata != nil {
		resp.Metadata = &GenerationMetadataResponse{
			Model:        result.Metadata.Model,
			PromptType:   result.Metadata.PromptType,
			TokensUsed:   result.Metadata.TokensUsed,
			InputTokens:  result.Metadata.InputTokens,
			OutputTokens: result.Metadata.OutputTokens,
		}
	}
	return resp
}

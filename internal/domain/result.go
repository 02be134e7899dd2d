package domain

// GenerationMetadata carries provider usage details for a successful
// generation. Token counts are pointers because the provider response may
// omit usage data entirely; absent counts stay nil rather than zero.
type GenerationMetadata struct {
	Model        string `json:"model"`
	PromptType   string `json:"prompt_type"`
	TokensUsed   *int   `json:"tokens_used"`
	InputTokens  *int   `json:"input_tokens"`
	OutputTokens *int   `json:"output_tokens"`
}

// GenerationResult is the uniform outcome envelope returned by the prompt
// service. Exactly one variant is populated: a success carries the generated
// prompt and its metadata, a failure carries only an error message. Faults
// from the provider boundary are converted into the failure variant once,
// inside the service; callers never see a raw provider error.
type GenerationResult struct {
	Success      bool
	Prompt       string
	Metadata     *GenerationMetadata
	ErrorMessage string
}

// NewSuccessResult builds the success variant of GenerationResult.
func NewSuccessResult(prompt string, metadata GenerationMetadata) GenerationResult {
	return GenerationResult{
		Success:  true,
		Prompt:   prompt,
		Metadata: &metadata,
	}
}

// NewFailureResult builds the failure variant of GenerationResult.
func NewFailureResult(message string) GenerationResult {
	return GenerationResult{
		Success:      false,
		ErrorMessage: message,
	}
}

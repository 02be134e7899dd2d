package domain

// GenerationRequest describes a single prompt-generation invocation.
// A request is constructed fresh per call and never persisted; no entity
// survives beyond one request/response cycle.
type GenerationRequest struct {
	// UserInput is the user's description of the prompt they want. Required.
	UserInput string

	// Context is optional additional context appended to the user message.
	Context string

	// PromptType selects the instructional template. Unknown values resolve
	// to PromptTypeGeneral.
	PromptType PromptType

	// CustomInstructions is optional text appended verbatim to the resolved
	// system text.
	CustomInstructions string
}

// NewGenerationRequest creates a GenerationRequest from raw inputs. The
// prompt type string is normalized through ParsePromptType, so an unknown
// or empty type silently becomes "general".
func NewGenerationRequest(userInput, context, promptType, customInstructions string) GenerationRequest {
	pt, _ := ParsePromptType(promptType)
	return GenerationRequest{
		UserInput:          userInput,
		Context:            context,
		PromptType:         pt,
		CustomInstructions: customInstructions,
	}
}

// Validate checks that the request can be sent to a provider.
// Returns ErrEmptyUserInput when the required user input is missing.
func (r GenerationRequest) Validate() error {
	if r.UserInput == "" {
		return ErrEmptyUserInput
	}
	return nil
}

package generation

import "context"

// Request is the provider-agnostic payload for a single text-generation call.
type Request struct {
	// Model is the provider model identifier.
	Model string

	// MaxTokens is the output token ceiling passed to the provider.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64

	// SystemPrompt is the instructional text describing the model's role.
	SystemPrompt string

	// UserMessage is the composed user-role message.
	UserMessage string
}

// Usage holds the token counters reported by a provider. A nil *Usage on a
// Response means the provider omitted usage data.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// TotalTokens returns the sum of input and output tokens.
func (u Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// Response is the normalized outcome of a successful provider call.
type Response struct {
	// Text is the first text block of the provider response. An empty string
	// with a nil error is a defined degenerate case (content absent), not a
	// failure.
	Text string

	// Usage is nil when the provider response exposes no usage field.
	Usage *Usage
}

// Generator defines the interface for issuing one synchronous generation
// call to an external LLM provider. This interface serves as the boundary
// between the application core and the provider adapters, following the
// hexagonal architecture pattern.
//
// Implementations hold only immutable configuration and are safe for
// concurrent use. They perform a single attempt per call: no retry, no
// backoff, no partial-result salvage.
type Generator interface {
	// Generate sends one request to the provider and returns the normalized
	// response, or an error for any network fault, provider error, or
	// malformed response.
	Generate(ctx context.Context, req Request) (*Response, error)
}

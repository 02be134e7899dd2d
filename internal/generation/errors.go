package generation

import "errors"

// Common errors returned by the generation package and its provider adapters.
var (
	// ErrInvalidResponse is returned when the provider response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrProviderError is returned when the provider reports an error for the request
	ErrProviderError = errors.New("language model provider error")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

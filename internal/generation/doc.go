// Package generation provides the interfaces and prompt-assembly logic for
// interacting with external LLM services. It abstracts the details of
// provider API integration (Anthropic, Gemini), allowing the application to
// generate prompts without coupling to a specific external service.
package generation

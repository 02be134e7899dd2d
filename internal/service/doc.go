// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between the prompt-assembly logic in
// internal/generation and the provider adapters, and converts provider
// faults into the uniform result envelope consumed by both front ends.
//
// Services receive dependencies through constructor injection; there is no
// ambient singleton.
package service

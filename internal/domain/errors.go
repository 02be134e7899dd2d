package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrEmptyUserInput is returned when a generation request has no user input.
	ErrEmptyUserInput = errors.New("user input cannot be empty")
)

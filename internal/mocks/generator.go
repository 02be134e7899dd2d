package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/promptgen-api/internal/generation"
)

// MockGenerator is a configurable mock implementation of generation.Generator.
// It records every request it receives so tests can assert whether and how
// the provider boundary was invoked.
type MockGenerator struct {
	// GenerateFn is called by Generate when set.
	GenerateFn func(ctx context.Context, req generation.Request) (*generation.Response, error)

	mu       sync.Mutex
	requests []generation.Request
}

// Generate implements generation.Generator.
func (m *MockGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return &generation.Response{}, nil
}

// CallCount returns how many times Generate was invoked.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest returns the most recent request passed to Generate, or a zero
// request if Generate was never called.
func (m *MockGenerator) LastRequest() generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return generation.Request{}
	}
	return m.requests[len(m.requests)-1]
}

package mocks

import (
	"context"
	"sync"
)

// MockAssistantRepo replies with a canned completion.
type MockAssistantRepo struct {
	Reply string
	Err   error

	mu      sync.Mutex
	Prompts []string
}

func (m *MockAssistantRepo) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

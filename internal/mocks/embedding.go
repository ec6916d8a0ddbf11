package mocks

import (
	"context"
	"strings"
	"sync"
)

// MockEmbeddingRepo returns deterministic vectors selected by substring
// match against the document text. Keys should be disjoint.
type MockEmbeddingRepo struct {
	Vectors map[string][]float64
	Default []float64
	Err     error
	ErrOn   string // return Err only for documents containing this substring

	mu    sync.Mutex
	Calls []string
}

func (m *MockEmbeddingRepo) Embed(ctx context.Context, text string) ([]float64, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	if m.Err != nil && (m.ErrOn == "" || strings.Contains(text, m.ErrOn)) {
		return nil, m.Err
	}

	for key, vec := range m.Vectors {
		if strings.Contains(text, key) {
			return vec, nil
		}
	}
	if m.Default != nil {
		return m.Default, nil
	}
	return []float64{1, 0}, nil
}

// Documents returns a copy of the embedded document texts seen so far.
func (m *MockEmbeddingRepo) Documents() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Calls...)
}

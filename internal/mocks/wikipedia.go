package mocks

import (
	"context"
	"sync"

	"github.com/pep299/wiki-stub-finder/internal/model"
)

// MockWikipediaRepo serves canned lookups. Safe for the pipeline's
// concurrent fan-out.
type MockWikipediaRepo struct {
	SearchResults     map[string][]model.SearchResult
	CategoriesByTitle map[string][]string
	DetailsByTitle    map[string]*model.ArticleDetail

	mu          sync.Mutex
	SearchCalls []string
}

func (m *MockWikipediaRepo) Search(ctx context.Context, query string, limit int) []model.SearchResult {
	m.mu.Lock()
	m.SearchCalls = append(m.SearchCalls, query)
	m.mu.Unlock()
	return m.SearchResults[query]
}

func (m *MockWikipediaRepo) Categories(ctx context.Context, title string) []string {
	return m.CategoriesByTitle[title]
}

func (m *MockWikipediaRepo) Details(ctx context.Context, title string) *model.ArticleDetail {
	return m.DetailsByTitle[title]
}

// Queries returns a copy of the search queries seen so far.
func (m *MockWikipediaRepo) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.SearchCalls...)
}

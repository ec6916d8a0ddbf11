package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pep299/wiki-stub-finder/internal/mocks"
	"github.com/pep299/wiki-stub-finder/internal/model"
)

func TestSearchHandler(t *testing.T) {
	wiki := &mocks.MockWikipediaRepo{
		SearchResults: map[string][]model.SearchResult{
			"volcano": {{Title: "Krakatoa II", PageID: 42, Snippet: "..."}},
		},
	}
	h := NewSearch(wiki)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"volcano"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Results []model.SearchResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Results) != 1 || body.Results[0].Title != "Krakatoa II" {
		t.Errorf("unexpected results: %v", body.Results)
	}
}

func TestSearchHandlerRequiresQuery(t *testing.T) {
	h := NewSearch(&mocks.MockWikipediaRepo{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":""}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSearchHandlerInvalidJSON(t *testing.T) {
	h := NewSearch(&mocks.MockWikipediaRepo{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{not json`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSearchHandlerEmptyResultsAsList(t *testing.T) {
	h := NewSearch(&mocks.MockWikipediaRepo{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"nothing matches"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "{\"results\":[]}\n" {
		t.Errorf("expected empty result list, got %q", got)
	}
}

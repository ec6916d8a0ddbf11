package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pep299/wiki-stub-finder/internal/mocks"
	"github.com/pep299/wiki-stub-finder/internal/model"
	"github.com/pep299/wiki-stub-finder/internal/service"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func stubbedWiki() *mocks.MockWikipediaRepo {
	return &mocks.MockWikipediaRepo{
		SearchResults: map[string][]model.SearchResult{
			"geology stub": {{Title: "Krakatoa II", PageID: 42}},
		},
		CategoriesByTitle: map[string][]string{
			"Krakatoa II": {"Category:Volcano stubs"},
		},
		DetailsByTitle: map[string]*model.ArticleDetail{
			"Krakatoa II": {
				Title:      "Krakatoa II",
				Extract:    "A small island.",
				Categories: []string{"Category:Volcano stubs"},
				ViewURL:    "https://en.wikipedia.org/wiki/Krakatoa_II",
			},
		},
	}
}

func newStubsHandler(wiki *mocks.MockWikipediaRepo, embeddings *mocks.MockEmbeddingRepo, assistant *mocks.MockAssistantRepo) *Stubs {
	ranker := service.NewRanker(wiki, embeddings, discardLogger())
	topics := service.NewTopicExtractor(assistant, discardLogger())
	return NewStubs(ranker, topics)
}

func TestStubsHandler(t *testing.T) {
	wiki := stubbedWiki()
	h := newStubsHandler(wiki, &mocks.MockEmbeddingRepo{}, &mocks.MockAssistantRepo{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/relevant-stubs", strings.NewReader(`{"topics":["geology"]}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Results []model.ScoredArticle `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Results) != 1 || body.Results[0].Title != "Krakatoa II" {
		t.Errorf("unexpected results: %+v", body.Results)
	}

	queries := wiki.Queries()
	if len(queries) != 1 || queries[0] != "geology stub" {
		t.Errorf("unexpected search queries: %v", queries)
	}
}

func TestStubsHandlerExtractsTopicsFromText(t *testing.T) {
	wiki := stubbedWiki()
	assistant := &mocks.MockAssistantRepo{Reply: "geology"}
	h := newStubsHandler(wiki, &mocks.MockEmbeddingRepo{}, assistant)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/relevant-stubs",
		strings.NewReader(`{"text":"I study volcanic islands."}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(assistant.Prompts) != 1 {
		t.Errorf("expected topic extraction to be invoked once, got %d calls", len(assistant.Prompts))
	}
	if queries := wiki.Queries(); len(queries) != 1 || queries[0] != "geology stub" {
		t.Errorf("unexpected search queries: %v", queries)
	}
}

func TestStubsHandlerExtractionFailureDegrades(t *testing.T) {
	wiki := stubbedWiki()
	assistant := &mocks.MockAssistantRepo{Err: errors.New("upstream down")}
	h := newStubsHandler(wiki, &mocks.MockEmbeddingRepo{}, assistant)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/relevant-stubs",
		strings.NewReader(`{"text":"I study volcanic islands."}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "{\"results\":[]}\n" {
		t.Errorf("expected empty result list, got %q", got)
	}
}

func TestStubsHandlerEmbeddingFailureIs500(t *testing.T) {
	h := newStubsHandler(stubbedWiki(), &mocks.MockEmbeddingRepo{Err: errors.New("embedding down")}, &mocks.MockAssistantRepo{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/relevant-stubs", strings.NewReader(`{"topics":["geology"]}`)))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Detail == "" {
		t.Error("expected an error detail message")
	}
}

func TestStubsHandlerInvalidJSON(t *testing.T) {
	h := newStubsHandler(stubbedWiki(), &mocks.MockEmbeddingRepo{}, &mocks.MockAssistantRepo{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/relevant-stubs", strings.NewReader(`{broken`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

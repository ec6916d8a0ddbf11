package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pep299/wiki-stub-finder/internal/model"
	"github.com/pep299/wiki-stub-finder/internal/service"
	"github.com/pep299/wiki-stub-finder/internal/transport/response"
)

// Stubs serves /api/relevant-stubs, the ranking endpoint.
type Stubs struct {
	ranker *service.Ranker
	topics *service.TopicExtractor
}

func NewStubs(ranker *service.Ranker, topics *service.TopicExtractor) *Stubs {
	return &Stubs{
		ranker: ranker,
		topics: topics,
	}
}

type stubsRequest struct {
	Topics []string `json:"topics"`
	Text   string   `json:"text"`
	Limit  int      `json:"limit"`
}

type stubsResponse struct {
	Results []model.ScoredArticle `json:"results"`
}

func (h *Stubs) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req stubsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	topics := req.Topics
	if len(topics) == 0 && strings.TrimSpace(req.Text) != "" {
		// Derive topics from the free text; extraction failure just means
		// ranking proceeds with an empty topic list.
		topics = h.topics.Extract(r.Context(), req.Text)
	}

	results, err := h.ranker.Rank(r.Context(), topics, req.Text, req.Limit)
	if err != nil {
		response.WriteInternalError(w, err.Error())
		return
	}
	if results == nil {
		results = []model.ScoredArticle{}
	}

	response.WriteJSON(w, http.StatusOK, stubsResponse{Results: results})
}

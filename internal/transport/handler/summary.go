package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pep299/wiki-stub-finder/internal/model"
	"github.com/pep299/wiki-stub-finder/internal/service"
	"github.com/pep299/wiki-stub-finder/internal/transport/response"
)

// Summary serves /api/summary, an LLM-written overview of a result set.
type Summary struct {
	summary *service.Summary
}

func NewSummary(summary *service.Summary) *Summary {
	return &Summary{
		summary: summary,
	}
}

type summaryRequest struct {
	Articles []model.ScoredArticle `json:"articles"`
	Query    string                `json:"query"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

func (h *Summary) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if len(req.Articles) == 0 {
		response.WriteBadRequest(w, "Please provide articles to summarize")
		return
	}

	text, err := h.summary.Generate(r.Context(), req.Articles, req.Query)
	if err != nil {
		response.WriteInternalError(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, summaryResponse{Summary: text})
}

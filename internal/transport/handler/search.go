package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pep299/wiki-stub-finder/internal/model"
	"github.com/pep299/wiki-stub-finder/internal/repository"
	"github.com/pep299/wiki-stub-finder/internal/transport/response"
)

const defaultSearchLimit = 20

type Search struct {
	wiki repository.WikipediaRepository
}

func NewSearch(wiki repository.WikipediaRepository) *Search {
	return &Search{
		wiki: wiki,
	}
}

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type searchResponse struct {
	Results []model.SearchResult `json:"results"`
}

func (h *Search) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if req.Query == "" {
		response.WriteBadRequest(w, "query is required")
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	results := h.wiki.Search(r.Context(), req.Query, req.Limit)
	if results == nil {
		results = []model.SearchResult{}
	}

	response.WriteJSON(w, http.StatusOK, searchResponse{Results: results})
}

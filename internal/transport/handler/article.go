package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pep299/wiki-stub-finder/internal/repository"
	"github.com/pep299/wiki-stub-finder/internal/stub"
	"github.com/pep299/wiki-stub-finder/internal/transport/response"
)

// Article serves the per-title lookup endpoints and the static stub
// category list.
type Article struct {
	wiki repository.WikipediaRepository
}

func NewArticle(wiki repository.WikipediaRepository) *Article {
	return &Article{
		wiki: wiki,
	}
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

func (h *Article) Categories(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	categories := h.wiki.Categories(r.Context(), title)
	if categories == nil {
		categories = []string{}
	}

	response.WriteJSON(w, http.StatusOK, categoriesResponse{Categories: categories})
}

func (h *Article) Details(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	details := h.wiki.Details(r.Context(), title)
	if details == nil {
		response.WriteNotFound(w, "Article not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, details)
}

func (h *Article) StubCategories(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, categoriesResponse{Categories: stub.Categories()})
}

package repository

import (
	"context"
	"log"

	"github.com/pep299/wiki-stub-finder/internal/model"
	"github.com/pep299/wiki-stub-finder/internal/wikipedia"
)

// WikipediaRepository is the gateway the ranking pipeline reads from.
// Lookups degrade to empty results on upstream failure: a single topic's
// transient lookup failure must not abort a multi-topic ranking, so partial
// results are preferred over total failure. Failures are logged, never
// surfaced.
type WikipediaRepository interface {
	Search(ctx context.Context, query string, limit int) []model.SearchResult
	Categories(ctx context.Context, title string) []string
	Details(ctx context.Context, title string) *model.ArticleDetail
}

type wikipediaRepository struct {
	client *wikipedia.Client
	logger *log.Logger
}

func NewWikipediaRepository(client *wikipedia.Client, logger *log.Logger) WikipediaRepository {
	return &wikipediaRepository{
		client: client,
		logger: logger,
	}
}

func (r *wikipediaRepository) Search(ctx context.Context, query string, limit int) []model.SearchResult {
	results, err := r.client.Search(ctx, query, limit)
	if err != nil {
		r.logger.Printf("wikipedia search failed query=%q: %v", query, err)
		return nil
	}
	return results
}

func (r *wikipediaRepository) Categories(ctx context.Context, title string) []string {
	categories, err := r.client.Categories(ctx, title)
	if err != nil {
		r.logger.Printf("wikipedia categories lookup failed title=%q: %v", title, err)
		return nil
	}
	return categories
}

func (r *wikipediaRepository) Details(ctx context.Context, title string) *model.ArticleDetail {
	details, err := r.client.Details(ctx, title)
	if err != nil {
		r.logger.Printf("wikipedia details lookup failed title=%q: %v", title, err)
		return nil
	}
	return details
}

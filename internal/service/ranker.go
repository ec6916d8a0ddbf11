package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pep299/wiki-stub-finder/internal/model"
	"github.com/pep299/wiki-stub-finder/internal/repository"
	"github.com/pep299/wiki-stub-finder/internal/stub"
	"github.com/pep299/wiki-stub-finder/internal/vector"
)

const (
	defaultResultLimit  = 10
	searchLimitPerTopic = 5
)

// Ranker finds stub articles relevant to a user's expertise and scores them
// by embedding similarity.
type Ranker struct {
	wiki       repository.WikipediaRepository
	embeddings repository.EmbeddingRepository
	logger     *log.Logger
}

func NewRanker(
	wiki repository.WikipediaRepository,
	embeddings repository.EmbeddingRepository,
	logger *log.Logger,
) *Ranker {
	return &Ranker{
		wiki:       wiki,
		embeddings: embeddings,
		logger:     logger,
	}
}

// Rank searches for stub candidates per topic, scores each against the
// user's profile embedding, deduplicates by title (first seen wins), sorts
// by score descending with stable ties, and truncates to limit.
//
// Only the profile embedding call is fatal; every per-topic and
// per-candidate failure is recovered locally and narrows the result set.
func (r *Ranker) Rank(ctx context.Context, topics []string, freeText string, limit int) ([]model.ScoredArticle, error) {
	if limit <= 0 {
		limit = defaultResultLimit
	}

	userVector, err := r.embeddings.Embed(ctx, profileDocument(topics, freeText))
	if err != nil {
		return nil, fmt.Errorf("embedding expertise profile: %w", err)
	}

	// Fan out one unit per topic. Each unit writes only its own slot, so
	// completion order never leaks into result order.
	perTopic := make([][]model.ScoredArticle, len(topics))
	g, gctx := errgroup.WithContext(ctx)
	for i, topic := range topics {
		i, topic := i, topic
		g.Go(func() error {
			perTopic[i] = r.rankTopic(gctx, topic, userVector)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]model.ScoredArticle, 0)
	seen := make(map[string]struct{})
	for _, results := range perTopic {
		for _, article := range results {
			if _, dup := seen[article.Title]; dup {
				continue
			}
			seen[article.Title] = struct{}{}
			merged = append(merged, article)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RelevanceScore > merged[j].RelevanceScore
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func (r *Ranker) rankTopic(ctx context.Context, topic string, userVector []float64) []model.ScoredArticle {
	candidates := r.wiki.Search(ctx, topic+" stub", searchLimitPerTopic)
	if len(candidates) == 0 {
		return nil
	}

	slots := make([]*model.ScoredArticle, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		i, title := i, candidate.Title
		g.Go(func() error {
			scored, err := r.scoreCandidate(gctx, topic, title, userVector)
			if err != nil {
				r.logger.Printf("skipping candidate %q for topic %q: %v", title, topic, err)
				return nil
			}
			slots[i] = scored
			return nil
		})
	}
	_ = g.Wait()

	results := make([]model.ScoredArticle, 0, len(slots))
	for _, scored := range slots {
		if scored != nil {
			results = append(results, *scored)
		}
	}
	return results
}

// scoreCandidate returns (nil, nil) when the candidate is filtered out: not
// a stub, or the title no longer resolves.
func (r *Ranker) scoreCandidate(ctx context.Context, topic, title string, userVector []float64) (*model.ScoredArticle, error) {
	categories := r.wiki.Categories(ctx, title)
	if !stub.IsStub(categories) {
		return nil, nil
	}

	details := r.wiki.Details(ctx, title)
	if details == nil {
		return nil, nil
	}

	document := vector.Combine([]vector.Field{
		{Label: "title", Value: details.Title},
		{Label: "content", Value: details.Extract},
		{Label: "categories", Value: strings.Join(details.Categories, ", ")},
	})

	articleVector, err := r.embeddings.Embed(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("embedding article: %w", err)
	}

	score, err := vector.CosineSimilarity(userVector, articleVector)
	if err != nil {
		return nil, err
	}

	return &model.ScoredArticle{
		ArticleDetail:  *details,
		RelevanceScore: score,
		MissingInfo:    stub.Gaps(details.Extract, topic),
	}, nil
}

// profileDocument builds the combined text representing the user's
// interests. Both sections are optional; an empty profile embeds the empty
// string, which is accepted rather than special-cased.
func profileDocument(topics []string, freeText string) string {
	var sections []string
	if len(topics) > 0 {
		sections = append(sections, "Topics: "+strings.Join(topics, ", "))
	}
	if trimmed := strings.TrimSpace(freeText); trimmed != "" {
		sections = append(sections, "Expertise description: "+trimmed)
	}
	return strings.Join(sections, "\n\n")
}

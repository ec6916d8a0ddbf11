package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pep299/wiki-stub-finder/internal/model"
	"github.com/pep299/wiki-stub-finder/internal/repository"
)

const (
	summaryExtractLimit  = 300
	summaryCategoryLimit = 5
)

// Summary produces a short natural-language overview of a recommendation
// result set.
type Summary struct {
	assistant repository.AssistantRepository
}

func NewSummary(assistant repository.AssistantRepository) *Summary {
	return &Summary{
		assistant: assistant,
	}
}

// Generate builds the overview prompt from the ranked articles and the
// user's query and asks the chat collaborator for a summary.
func (s *Summary) Generate(ctx context.Context, articles []model.ScoredArticle, query string) (string, error) {
	if len(articles) == 0 {
		return "", fmt.Errorf("no articles to summarize")
	}

	blocks := make([]string, 0, len(articles))
	for i, article := range articles {
		extract := article.Extract
		if runes := []rune(extract); len(runes) > summaryExtractLimit {
			extract = string(runes[:summaryExtractLimit]) + "..."
		}
		categories := article.Categories
		suffix := ""
		if len(categories) > summaryCategoryLimit {
			categories = categories[:summaryCategoryLimit]
			suffix = "..."
		}
		blocks = append(blocks, fmt.Sprintf("Article %d: %q\nDescription: %s\nCategories: %s%s",
			i+1, article.Title, extract, strings.Join(categories, ", "), suffix))
	}

	if query == "" {
		query = "various topics"
	}

	prompt := fmt.Sprintf(`You are a helpful assistant that provides summaries of Wikipedia article recommendations.

The user is interested in: %s

Here are %d Wikipedia stub articles that match their interests:

%s

Please provide a brief summary (maximum 3 paragraphs) explaining:
1. What types of articles were found
2. How they relate to the user's interests
3. Why these articles might need contributions

Keep your tone helpful and encouraging. Focus on motivating the user to contribute to these articles.

Note: These are stub articles, which means they are incomplete and need expansion.`,
		query, len(articles), strings.Join(blocks, "\n\n"))

	return s.assistant.Complete(ctx, prompt)
}

package repository

import (
	"context"

	"github.com/pep299/wiki-stub-finder/internal/openai"
)

// AssistantRepository fronts the chat-completion collaborator used for
// topic extraction and result summaries.
type AssistantRepository interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type assistantRepository struct {
	client *openai.Client
}

func NewAssistantRepository(client *openai.Client) AssistantRepository {
	return &assistantRepository{
		client: client,
	}
}

func (r *assistantRepository) Complete(ctx context.Context, prompt string) (string, error) {
	return r.client.Complete(ctx, prompt)
}

package repository

import (
	"context"

	"github.com/pep299/wiki-stub-finder/internal/cache"
	"github.com/pep299/wiki-stub-finder/internal/openai"
)

// EmbeddingRepository converts text into a fixed-dimension vector. Unlike
// the Wikipedia gateway, embedding failures propagate: the pipeline must
// never rank against a substitute vector.
type EmbeddingRepository interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type embeddingRepository struct {
	client *openai.Client
}

func NewEmbeddingRepository(client *openai.Client) EmbeddingRepository {
	return &embeddingRepository{
		client: client,
	}
}

func (r *embeddingRepository) Embed(ctx context.Context, text string) ([]float64, error) {
	return r.client.Embed(ctx, text)
}

// cachedEmbeddingRepository decorates an EmbeddingRepository with a TTL
// cache keyed by the document text.
type cachedEmbeddingRepository struct {
	inner EmbeddingRepository
	store *cache.Memory
}

func NewCachedEmbeddingRepository(inner EmbeddingRepository, store *cache.Memory) EmbeddingRepository {
	return &cachedEmbeddingRepository{
		inner: inner,
		store: store,
	}
}

func (r *cachedEmbeddingRepository) Embed(ctx context.Context, text string) ([]float64, error) {
	key := cache.Key(text)
	if vector, err := r.store.Get(key); err == nil {
		return vector, nil
	}

	vector, err := r.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	r.store.Set(key, vector)
	return vector, nil
}

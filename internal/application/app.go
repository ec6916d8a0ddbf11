package application

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pep299/wiki-stub-finder/internal/cache"
	"github.com/pep299/wiki-stub-finder/internal/config"
	"github.com/pep299/wiki-stub-finder/internal/openai"
	"github.com/pep299/wiki-stub-finder/internal/repository"
	"github.com/pep299/wiki-stub-finder/internal/service"
	"github.com/pep299/wiki-stub-finder/internal/transport/handler"
	"github.com/pep299/wiki-stub-finder/internal/wikipedia"
)

// Application wires the collaborators, services and handlers together.
type Application struct {
	Config *config.Config
	Logger *log.Logger

	SearchHandler  *handler.Search
	ArticleHandler *handler.Article
	StubsHandler   *handler.Stubs
	SummaryHandler *handler.Summary
	FileHandler    *handler.File

	EmbeddingCache *cache.Memory
}

// New creates a new application instance with all dependencies
func New() (*Application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	// External collaborators
	wikiClient := wikipedia.NewClient(cfg.WikipediaAPIURL)
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.ChatModel)
	embeddingCache := cache.NewMemory(time.Duration(cfg.CacheTTLHours) * time.Hour)

	// Repositories (DI seam; swapped for mocks in tests)
	wikiRepo := repository.NewWikipediaRepository(wikiClient, logger)
	embeddingRepo := repository.NewCachedEmbeddingRepository(
		repository.NewEmbeddingRepository(openaiClient), embeddingCache)
	assistantRepo := repository.NewAssistantRepository(openaiClient)

	// Services (business logic)
	ranker := service.NewRanker(wikiRepo, embeddingRepo, logger)
	topicExtractor := service.NewTopicExtractor(assistantRepo, logger)
	summaryService := service.NewSummary(assistantRepo)

	// Handlers (HTTP layer)
	return &Application{
		Config:         cfg,
		Logger:         logger,
		SearchHandler:  handler.NewSearch(wikiRepo),
		ArticleHandler: handler.NewArticle(wikiRepo),
		StubsHandler:   handler.NewStubs(ranker, topicExtractor),
		SummaryHandler: handler.NewSummary(summaryService),
		FileHandler:    handler.NewFile(),
		EmbeddingCache: embeddingCache,
	}, nil
}

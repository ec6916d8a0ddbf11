package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pep299/wiki-stub-finder/internal/repository"
)

const (
	maxExtractedTopics = 5
	maxExtractionInput = 4000
)

// TopicExtractor derives search topics from free-form expertise text when
// the caller supplied none.
type TopicExtractor struct {
	assistant repository.AssistantRepository
	logger    *log.Logger
}

func NewTopicExtractor(assistant repository.AssistantRepository, logger *log.Logger) *TopicExtractor {
	return &TopicExtractor{
		assistant: assistant,
		logger:    logger,
	}
}

// Extract asks the chat collaborator for a comma-separated topic list.
// Extraction failure degrades to an empty list so the request can still
// proceed.
func (e *TopicExtractor) Extract(ctx context.Context, text string) []string {
	if runes := []rune(text); len(runes) > maxExtractionInput {
		text = string(runes[:maxExtractionInput])
	}

	prompt := fmt.Sprintf(`Extract up to %d short topic keywords that describe the areas of expertise in the following text. Respond with a comma-separated list of keywords only, no numbering and no extra commentary.

Text:
%s`, maxExtractedTopics, text)

	reply, err := e.assistant.Complete(ctx, prompt)
	if err != nil {
		e.logger.Printf("topic extraction failed: %v", err)
		return nil
	}
	return parseTopics(reply)
}

func parseTopics(reply string) []string {
	var topics []string
	for _, part := range strings.Split(reply, ",") {
		topic := strings.Trim(strings.TrimSpace(part), `"'.`)
		if topic == "" {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == maxExtractedTopics {
			break
		}
	}
	return topics
}

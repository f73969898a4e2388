package core

import (
	"context"
	"time"

	"github.com/kiraleos/wellness-backend/internal/logger"
)

type ChatService struct {
	kb        *KnowledgeBase
	client    GenerationClient
	maxTokens int
	timeout   time.Duration
	log       *logger.Logger
}

func NewChatService(kb *KnowledgeBase, client GenerationClient, maxTokens int, timeout time.Duration, log *logger.Logger) *ChatService {
	return &ChatService{
		kb:        kb,
		client:    client,
		maxTokens: maxTokens,
		timeout:   timeout,
		log:       log.With("service", "ChatService"),
	}
}

// Generate answers prompt with a single call to the generation service.
// Input problems come back as *ValidationError; a failed or timed out call
// comes back as *UpstreamError. Nothing is retried.
func (s *ChatService) Generate(ctx context.Context, prompt string) (*GenerationResult, error) {
	selected, err := SelectContext(prompt, s.kb)
	if err != nil {
		return nil, err
	}
	messages := ComposeMessages(prompt, selected)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.client.Generate(ctx, GenerationRequest{
		Messages:  messages,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		s.log.Error("generation failed",
			"error", err,
			"context_items", len(selected),
			"elapsed", time.Since(start),
		)
		return nil, &UpstreamError{Err: err}
	}

	s.log.Debug("generation complete",
		"context_items", len(selected),
		"prompt_tokens", result.Usage.PromptTokens,
		"completion_tokens", result.Usage.CompletionTokens,
		"elapsed", time.Since(start),
	)
	return result, nil
}

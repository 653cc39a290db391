package service

import (
	"context"
	"log/slog"

	"github.com/sakif/monkey-intelligence/internal/assistant"
	"github.com/sakif/monkey-intelligence/internal/metrics"
)

// ChatService answers study questions with the rule-based assistant.
type ChatService struct {
	logger *slog.Logger
}

func NewChatService(logger *slog.Logger) *ChatService {
	return &ChatService{logger: logger}
}

// Respond always produces a reply; the assistant has no failure mode.
func (s *ChatService) Respond(_ context.Context, prompt string) string {
	response, branch := assistant.Classify(prompt)

	metrics.IncChatResponse(string(branch))
	s.logger.Debug("chat response",
		slog.String("branch", string(branch)),
		slog.Int("promptLen", len(prompt)),
	)
	return response
}

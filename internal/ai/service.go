package ai

import (
	"context"

	"klture/internal/logger"
)

// Service bundles the model client with the generation history store.
type Service struct {
	client  *Client
	history HistoryRepository
}

func NewService(client *Client, history HistoryRepository) *Service {
	return &Service{
		client:  client,
		history: history,
	}
}

// recordHistory persists a generation for the member's profile page. A
// failed write is logged only; the generated content was already produced
// and belongs to the caller.
func (s *Service) recordHistory(ctx context.Context, userEmail, toolName string, input, result any) {
	if s.history == nil || userEmail == "" {
		return
	}
	if _, err := s.history.Insert(ctx, userEmail, toolName, input, result); err != nil {
		logger.Errorf("failed to record %s history for %s: %v", toolName, userEmail, err)
	}
}

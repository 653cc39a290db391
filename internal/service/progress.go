package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sakif/monkey-intelligence/internal/export"
	"github.com/sakif/monkey-intelligence/internal/game"
	"github.com/sakif/monkey-intelligence/internal/metrics"
	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/repository"
)

// ProgressService records and reads game results.
type ProgressService struct {
	repo   repository.ProgressRepository
	logger *slog.Logger
}

func NewProgressService(repo repository.ProgressRepository, logger *slog.Logger) *ProgressService {
	return &ProgressService{repo: repo, logger: logger}
}

// Save appends p to its user's history and returns it. The record is stored
// exactly as sent; the store only fills in an id when configured to.
func (s *ProgressService) Save(ctx context.Context, p *model.GameProgress) (*model.GameProgress, error) {
	if err := s.repo.SaveProgress(ctx, p); err != nil {
		return nil, fmt.Errorf("service/progress: saving for user %d: %w", p.UserID, err)
	}

	metrics.IncProgressSaved(gameTypeLabel(p.GameType))
	s.logger.Debug("progress saved",
		slog.Int64("userID", p.UserID),
		slog.String("gameType", p.GameType),
		slog.Int("score", p.Score),
	)
	return p, nil
}

// List returns the user's results in the order they were saved.
func (s *ProgressService) List(ctx context.Context, userID int64) ([]model.GameProgress, error) {
	list, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service/progress: listing for user %d: %w", userID, err)
	}
	return list, nil
}

// Export writes the user's results to w as an .xlsx workbook.
func (s *ProgressService) Export(ctx context.Context, userID int64, w io.Writer) error {
	list, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	if err := export.WriteProgress(w, list); err != nil {
		return fmt.Errorf("service/progress: exporting for user %d: %w", userID, err)
	}

	s.logger.Info("progress exported",
		slog.Int64("userID", userID),
		slog.Int("records", len(list)),
	)
	return nil
}

// gameTypeLabel keeps the metrics label set closed: game types come from the
// client and could be anything.
func gameTypeLabel(gameType string) string {
	for _, d := range game.Difficulties() {
		if gameType == game.GameType(d) {
			return gameType
		}
	}
	return "other"
}


package services

import (
	"context"

	apperrors "github.com/odemir/folio/internal/errors"
	"github.com/odemir/folio/internal/models"
	"github.com/odemir/folio/internal/repositories"
)

// ProgressServiceImpl implements ProgressService on top of the progress repository
type ProgressServiceImpl struct {
	repo repositories.ProgressRepository
}

// NewProgressService creates a new progress service
func NewProgressService(repo repositories.ProgressRepository) ProgressService {
	return &ProgressServiceImpl{repo: repo}
}

// UpsertProgress stores one user's status for one word, overwriting any
// previous status for the same pair.
func (s *ProgressServiceImpl) UpsertProgress(ctx context.Context, userID, wordID, status string) (*models.ProgressEntry, error) {
	entry := &models.ProgressEntry{
		UserID: userID,
		WordID: wordID,
		Status: status,
	}
	if err := entry.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "progress", Message: err.Error()}
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return s.repo.GetByUserWord(ctx, userID, wordID)
}

func (s *ProgressServiceImpl) ListProgress(ctx context.Context, userID string) ([]*models.ProgressEntry, error) {
	if userID == "" {
		return nil, &apperrors.ErrValidation{Field: "user_id", Message: "is required"}
	}
	return s.repo.ListByUser(ctx, userID)
}

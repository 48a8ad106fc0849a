package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/odemir/folio/internal/db"
	"github.com/odemir/folio/internal/models"
)

type progressRepository struct {
	db *db.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(database *db.DB) ProgressRepository {
	return &progressRepository{db: database}
}

// Upsert inserts or updates the entry for (user_id, word_id). The pair is
// unique, so a repeated update rewrites the status in place.
func (r *progressRepository) Upsert(ctx context.Context, entry *models.ProgressEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "word_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert progress entry: %w", err)
	}
	return nil
}

func (r *progressRepository) GetByUserWord(ctx context.Context, userID, wordID string) (*models.ProgressEntry, error) {
	var entry models.ProgressEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND word_id = ?", userID, wordID).
		First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil // never assessed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress entry: %w", err)
	}
	return &entry, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID string) ([]*models.ProgressEntry, error) {
	var entries []*models.ProgressEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list progress entries: %w", err)
	}
	return entries, nil
}

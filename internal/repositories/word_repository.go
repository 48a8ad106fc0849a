package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/odemir/folio/internal/db"
	apperrors "github.com/odemir/folio/internal/errors"
	"github.com/odemir/folio/internal/models"
)

type wordRepository struct {
	db *db.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(database *db.DB) WordRepository {
	return &wordRepository{db: database}
}

func (r *wordRepository) Create(ctx context.Context, word *models.Word) error {
	if err := r.db.WithContext(ctx).Create(word).Error; err != nil {
		return fmt.Errorf("failed to create word: %w", err)
	}
	return nil
}

func (r *wordRepository) GetByID(ctx context.Context, id string) (*models.Word, error) {
	var word models.Word
	if err := r.db.WithContext(ctx).First(&word, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &apperrors.ErrNotFound{Entity: "word", ID: id}
		}
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	return &word, nil
}

func (r *wordRepository) List(ctx context.Context, filter *models.WordFilter) (*models.WordPage, error) {
	if filter == nil {
		filter = &models.WordFilter{}
	}
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.Word{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("term LIKE ? OR meaning LIKE ?", pattern, pattern)
	}
	if filter.Level != "" {
		query = query.Where("level = ?", filter.Level)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count words: %w", err)
	}

	var words []*models.Word
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("term ASC").Limit(filter.Limit).Offset(offset).Find(&words).Error; err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &models.WordPage{
		Items:      words,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (r *wordRepository) Update(ctx context.Context, word *models.Word) error {
	result := r.db.WithContext(ctx).Model(&models.Word{}).Where("id = ?", word.ID).Updates(word)
	if result.Error != nil {
		return fmt.Errorf("failed to update word: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "word", ID: word.ID}
	}
	return nil
}

func (r *wordRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Word{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete word: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "word", ID: id}
	}
	return nil
}

func (r *wordRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Word{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return total, nil
}

// GetByOffset returns the word at a stable offset, ordered by id. Used by
// the word-of-the-day rotation.
func (r *wordRepository) GetByOffset(ctx context.Context, offset int64) (*models.Word, error) {
	var word models.Word
	err := r.db.WithContext(ctx).Order("id ASC").Offset(int(offset)).Limit(1).Take(&word).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &apperrors.ErrNotFound{Entity: "word", ID: fmt.Sprintf("offset %d", offset)}
		}
		return nil, fmt.Errorf("failed to get word by offset: %w", err)
	}
	return &word, nil
}

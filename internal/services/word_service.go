package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/odemir/folio/internal/models"
	"github.com/odemir/folio/internal/repositories"
)

// WordServiceImpl implements WordService on top of the word repository
type WordServiceImpl struct {
	repo repositories.WordRepository
}

// NewWordService creates a new word service
func NewWordService(repo repositories.WordRepository) WordService {
	return &WordServiceImpl{repo: repo}
}

func (s *WordServiceImpl) CreateWord(ctx context.Context, word *models.Word) error {
	if err := word.Validate(); err != nil {
		return err
	}
	if word.ID == "" {
		word.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, word)
}

func (s *WordServiceImpl) GetWord(ctx context.Context, id string) (*models.Word, error) {
	if id == "" {
		return nil, fmt.Errorf("word id is required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *WordServiceImpl) ListWords(ctx context.Context, filter *models.WordFilter) (*models.WordPage, error) {
	return s.repo.List(ctx, filter)
}

func (s *WordServiceImpl) UpdateWord(ctx context.Context, word *models.Word) error {
	if word.ID == "" {
		return fmt.Errorf("word id is required")
	}
	if err := word.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, word)
}

func (s *WordServiceImpl) DeleteWord(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("word id is required")
	}
	return s.repo.Delete(ctx, id)
}

// WordOfTheDay rotates deterministically through the pool: the same day
// always yields the same word, and consecutive days walk the list.
func (s *WordServiceImpl) WordOfTheDay(ctx context.Context, day time.Time) (*models.Word, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("no words available")
	}

	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	epochDays := d.Unix() / 86400
	offset := epochDays % total
	return s.repo.GetByOffset(ctx, offset)
}

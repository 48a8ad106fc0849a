package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/odemir/folio/internal/db"
	apperrors "github.com/odemir/folio/internal/errors"
	"github.com/odemir/folio/internal/models"
)

type contentRepository struct {
	db *db.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(database *db.DB) ContentRepository {
	return &contentRepository{db: database}
}

// Posts

func (r *contentRepository) CreatePost(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *contentRepository) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ? OR slug = ?", id, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &apperrors.ErrNotFound{Entity: "post", ID: id}
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

func (r *contentRepository) ListPosts(ctx context.Context, publishedOnly bool) ([]*models.Post, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	var posts []*models.Post
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *contentRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	result := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", post.ID).Updates(post)
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "post", ID: post.ID}
	}
	return nil
}

func (r *contentRepository) DeletePost(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "post", ID: id}
	}
	return nil
}

// IncrementPostLikes bumps the like counter atomically and returns the new count.
func (r *contentRepository) IncrementPostLikes(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to increment likes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, &apperrors.ErrNotFound{Entity: "post", ID: id}
	}

	var post models.Post
	if err := r.db.WithContext(ctx).Select("likes").First(&post, "id = ?", id).Error; err != nil {
		return 0, fmt.Errorf("failed to read likes: %w", err)
	}
	return post.Likes, nil
}

// Works

func (r *contentRepository) CreateWork(ctx context.Context, work *models.Work) error {
	if err := r.db.WithContext(ctx).Create(work).Error; err != nil {
		return fmt.Errorf("failed to create work: %w", err)
	}
	return nil
}

func (r *contentRepository) GetWork(ctx context.Context, id string) (*models.Work, error) {
	var work models.Work
	if err := r.db.WithContext(ctx).First(&work, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &apperrors.ErrNotFound{Entity: "work", ID: id}
		}
		return nil, fmt.Errorf("failed to get work: %w", err)
	}
	return &work, nil
}

func (r *contentRepository) ListWorks(ctx context.Context) ([]*models.Work, error) {
	var works []*models.Work
	if err := r.db.WithContext(ctx).Order("sort_order ASC, created_at DESC").Find(&works).Error; err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return works, nil
}

func (r *contentRepository) UpdateWork(ctx context.Context, work *models.Work) error {
	result := r.db.WithContext(ctx).Model(&models.Work{}).Where("id = ?", work.ID).Updates(work)
	if result.Error != nil {
		return fmt.Errorf("failed to update work: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "work", ID: work.ID}
	}
	return nil
}

func (r *contentRepository) DeleteWork(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Work{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete work: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "work", ID: id}
	}
	return nil
}

// Recommendations

func (r *contentRepository) CreateRecommendation(ctx context.Context, rec *models.Recommendation) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create recommendation: %w", err)
	}
	return nil
}

func (r *contentRepository) ListRecommendations(ctx context.Context, category string) ([]*models.Recommendation, error) {
	query := r.db.WithContext(ctx).Model(&models.Recommendation{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var recs []*models.Recommendation
	if err := query.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recs, nil
}

func (r *contentRepository) DeleteRecommendation(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Recommendation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recommendation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "recommendation", ID: id}
	}
	return nil
}

// Suggestions

func (r *contentRepository) CreateSuggestion(ctx context.Context, s *models.Suggestion) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}
	return nil
}

func (r *contentRepository) ListSuggestions(ctx context.Context) ([]*models.Suggestion, error) {
	var suggestions []*models.Suggestion
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&suggestions).Error; err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}

func (r *contentRepository) DeleteSuggestion(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Suggestion{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete suggestion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "suggestion", ID: id}
	}
	return nil
}

// Contacts

func (r *contentRepository) CreateContact(ctx context.Context, c *models.Contact) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *contentRepository) ListContacts(ctx context.Context, since time.Time) ([]*models.Contact, error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{})
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	var contacts []*models.Contact
	if err := query.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (r *contentRepository) DeleteContact(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "contact", ID: id}
	}
	return nil
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/odemir/folio/internal/models"
	"github.com/odemir/folio/internal/repositories"
)

// ContentServiceImpl implements ContentService on top of the content repository
type ContentServiceImpl struct {
	repo repositories.ContentRepository
}

// NewContentService creates a new content service
func NewContentService(repo repositories.ContentRepository) ContentService {
	return &ContentServiceImpl{repo: repo}
}

func (s *ContentServiceImpl) CreatePost(ctx context.Context, post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	return s.repo.CreatePost(ctx, post)
}

func (s *ContentServiceImpl) GetPost(ctx context.Context, idOrSlug string) (*models.Post, error) {
	return s.repo.GetPost(ctx, idOrSlug)
}

func (s *ContentServiceImpl) ListPosts(ctx context.Context, publishedOnly bool) ([]*models.Post, error) {
	return s.repo.ListPosts(ctx, publishedOnly)
}

func (s *ContentServiceImpl) UpdatePost(ctx context.Context, post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}
	return s.repo.UpdatePost(ctx, post)
}

func (s *ContentServiceImpl) DeletePost(ctx context.Context, id string) error {
	return s.repo.DeletePost(ctx, id)
}

func (s *ContentServiceImpl) LikePost(ctx context.Context, id string) (int64, error) {
	return s.repo.IncrementPostLikes(ctx, id)
}

func (s *ContentServiceImpl) CreateWork(ctx context.Context, work *models.Work) error {
	if err := work.Validate(); err != nil {
		return err
	}
	if work.ID == "" {
		work.ID = uuid.NewString()
	}
	return s.repo.CreateWork(ctx, work)
}

func (s *ContentServiceImpl) GetWork(ctx context.Context, id string) (*models.Work, error) {
	return s.repo.GetWork(ctx, id)
}

func (s *ContentServiceImpl) ListWorks(ctx context.Context) ([]*models.Work, error) {
	return s.repo.ListWorks(ctx)
}

func (s *ContentServiceImpl) UpdateWork(ctx context.Context, work *models.Work) error {
	if err := work.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateWork(ctx, work)
}

func (s *ContentServiceImpl) DeleteWork(ctx context.Context, id string) error {
	return s.repo.DeleteWork(ctx, id)
}

func (s *ContentServiceImpl) CreateRecommendation(ctx context.Context, rec *models.Recommendation) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return s.repo.CreateRecommendation(ctx, rec)
}

func (s *ContentServiceImpl) ListRecommendations(ctx context.Context, category string) ([]*models.Recommendation, error) {
	return s.repo.ListRecommendations(ctx, category)
}

func (s *ContentServiceImpl) DeleteRecommendation(ctx context.Context, id string) error {
	return s.repo.DeleteRecommendation(ctx, id)
}

func (s *ContentServiceImpl) CreateSuggestion(ctx context.Context, sg *models.Suggestion) error {
	if err := sg.Validate(); err != nil {
		return err
	}
	if sg.ID == "" {
		sg.ID = uuid.NewString()
	}
	return s.repo.CreateSuggestion(ctx, sg)
}

func (s *ContentServiceImpl) ListSuggestions(ctx context.Context) ([]*models.Suggestion, error) {
	return s.repo.ListSuggestions(ctx)
}

func (s *ContentServiceImpl) DeleteSuggestion(ctx context.Context, id string) error {
	return s.repo.DeleteSuggestion(ctx, id)
}

func (s *ContentServiceImpl) CreateContact(ctx context.Context, c *models.Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return s.repo.CreateContact(ctx, c)
}

func (s *ContentServiceImpl) ListContacts(ctx context.Context, since time.Time) ([]*models.Contact, error) {
	return s.repo.ListContacts(ctx, since)
}

func (s *ContentServiceImpl) DeleteContact(ctx context.Context, id string) error {
	return s.repo.DeleteContact(ctx, id)
}

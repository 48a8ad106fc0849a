package repositories

import (
	"context"
	"time"

	"github.com/odemir/folio/internal/models"
)

// WordRepository defines data access for vocabulary words
type WordRepository interface {
	Create(ctx context.Context, word *models.Word) error
	GetByID(ctx context.Context, id string) (*models.Word, error)
	List(ctx context.Context, filter *models.WordFilter) (*models.WordPage, error)
	Update(ctx context.Context, word *models.Word) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	GetByOffset(ctx context.Context, offset int64) (*models.Word, error)
}

// ProgressRepository defines data access for user word progress
type ProgressRepository interface {
	Upsert(ctx context.Context, entry *models.ProgressEntry) error
	GetByUserWord(ctx context.Context, userID, wordID string) (*models.ProgressEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*models.ProgressEntry, error)
}

// ContentRepository defines data access for the site's CRUD content
type ContentRepository interface {
	// Posts
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id string) (*models.Post, error)
	ListPosts(ctx context.Context, publishedOnly bool) ([]*models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
	IncrementPostLikes(ctx context.Context, id string) (int64, error)

	// Works
	CreateWork(ctx context.Context, work *models.Work) error
	GetWork(ctx context.Context, id string) (*models.Work, error)
	ListWorks(ctx context.Context) ([]*models.Work, error)
	UpdateWork(ctx context.Context, work *models.Work) error
	DeleteWork(ctx context.Context, id string) error

	// Recommendations
	CreateRecommendation(ctx context.Context, rec *models.Recommendation) error
	ListRecommendations(ctx context.Context, category string) ([]*models.Recommendation, error)
	DeleteRecommendation(ctx context.Context, id string) error

	// Suggestions
	CreateSuggestion(ctx context.Context, s *models.Suggestion) error
	ListSuggestions(ctx context.Context) ([]*models.Suggestion, error)
	DeleteSuggestion(ctx context.Context, id string) error

	// Contacts
	CreateContact(ctx context.Context, c *models.Contact) error
	ListContacts(ctx context.Context, since time.Time) ([]*models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odemir/folio/internal/models"
)

// CryptoTickerProvider returns the exchange's bulk ticker listing as a
// map from pair symbol (e.g. "BTCUSDT") to last price.
type CryptoTickerProvider interface {
	TickerPrices(ctx context.Context) (map[string]decimal.Decimal, error)
}

// ForexRateProvider returns named exchange rates against the USD base.
// Metal codes (XAU, XAG) are reported as troy ounces per USD.
type ForexRateProvider interface {
	LatestRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// RateService produces the unified rate table for the fixed symbol set.
// The table is always fully keyed; it never fails as a whole, individual
// entries degrade to zero instead.
type RateService interface {
	Rates(ctx context.Context) models.RateTable
}

// WordService defines the interface for vocabulary word operations
type WordService interface {
	CreateWord(ctx context.Context, word *models.Word) error
	GetWord(ctx context.Context, id string) (*models.Word, error)
	ListWords(ctx context.Context, filter *models.WordFilter) (*models.WordPage, error)
	UpdateWord(ctx context.Context, word *models.Word) error
	DeleteWord(ctx context.Context, id string) error
	WordOfTheDay(ctx context.Context, day time.Time) (*models.Word, error)
}

// ProgressService defines the interface for user progress operations
type ProgressService interface {
	UpsertProgress(ctx context.Context, userID, wordID, status string) (*models.ProgressEntry, error)
	ListProgress(ctx context.Context, userID string) ([]*models.ProgressEntry, error)
}

// ContentService defines the interface for site content operations
type ContentService interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, idOrSlug string) (*models.Post, error)
	ListPosts(ctx context.Context, publishedOnly bool) ([]*models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
	LikePost(ctx context.Context, id string) (int64, error)

	CreateWork(ctx context.Context, work *models.Work) error
	GetWork(ctx context.Context, id string) (*models.Work, error)
	ListWorks(ctx context.Context) ([]*models.Work, error)
	UpdateWork(ctx context.Context, work *models.Work) error
	DeleteWork(ctx context.Context, id string) error

	CreateRecommendation(ctx context.Context, rec *models.Recommendation) error
	ListRecommendations(ctx context.Context, category string) ([]*models.Recommendation, error)
	DeleteRecommendation(ctx context.Context, id string) error

	CreateSuggestion(ctx context.Context, s *models.Suggestion) error
	ListSuggestions(ctx context.Context) ([]*models.Suggestion, error)
	DeleteSuggestion(ctx context.Context, id string) error

	CreateContact(ctx context.Context, c *models.Contact) error
	ListContacts(ctx context.Context, since time.Time) ([]*models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

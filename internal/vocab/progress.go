// Package vocab implements the client side of the vocabulary feature:
// the local-first progress store and the quiz engine.
package vocab

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/odemir/folio/internal/localstore"
	"github.com/odemir/folio/internal/models"
)

// Local storage keys
const (
	keyProgress = "word_progress"
	keyUserID   = "anon_user_id"
)

// Entry is one locally tracked word status.
type Entry struct {
	WordID    string    `json:"word_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProgressSyncer mirrors local updates to the server, best effort.
type ProgressSyncer interface {
	UpsertProgress(ctx context.Context, userID, wordID, status string) error
	ListProgress(ctx context.Context, userID string) ([]*models.ProgressEntry, error)
}

// ProgressStore tracks per-word learning status locally and mirrors each
// change to the server in the background. Local state is the source of
// truth; a failed sync is logged and never rolled back.
type ProgressStore struct {
	local  *localstore.Store
	remote ProgressSyncer // nil means offline-only
	logger *zap.Logger

	mu      sync.Mutex
	userID  string
	entries map[string]Entry

	syncs sync.WaitGroup
}

// OpenProgress loads the progress store. A random user id is generated
// and persisted on first use; it is the only key correlating this client
// with its server-side record. When the local state is empty the server's
// list is pulled once.
func OpenProgress(local *localstore.Store, remote ProgressSyncer, logger *zap.Logger) (*ProgressStore, error) {
	s := &ProgressStore{
		local:   local,
		remote:  remote,
		logger:  logger,
		entries: make(map[string]Entry),
	}

	found, err := local.Get(keyUserID, &s.userID)
	if err != nil {
		return nil, err
	}
	if !found || s.userID == "" {
		s.userID = uuid.NewString()
		if err := local.Put(keyUserID, s.userID); err != nil {
			return nil, err
		}
	}

	if _, err := local.Get(keyProgress, &s.entries); err != nil {
		return nil, err
	}

	if len(s.entries) == 0 && s.remote != nil {
		s.pullInitial()
	}

	return s, nil
}

// pullInitial fetches the server-side entries once. Failures are logged;
// starting empty is acceptable.
func (s *ProgressStore) pullInitial() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	remote, err := s.remote.ListProgress(ctx, s.userID)
	if err != nil {
		s.logger.Warn("failed to pull server progress", zap.Error(err))
		return
	}
	for _, e := range remote {
		s.entries[e.WordID] = Entry{
			WordID:    e.WordID,
			Status:    e.Status,
			UpdatedAt: e.UpdatedAt,
		}
	}
	if len(s.entries) > 0 {
		if err := s.local.Put(keyProgress, s.entries); err != nil {
			s.logger.Warn("failed to persist pulled progress", zap.Error(err))
		}
	}
}

// UserID returns the persisted anonymous user id.
func (s *ProgressStore) UserID() string {
	return s.userID
}

// SetStatus applies the update locally first, persists it, then mirrors
// it to the server from a detached goroutine. The same word never gets a
// second entry; updates overwrite in place.
func (s *ProgressStore) SetStatus(wordID, status string) error {
	if wordID == "" {
		return &validationError{"word id is required"}
	}
	if !models.IsValidStatus(status) {
		return &validationError{"status must be one of known, learning, target"}
	}

	s.mu.Lock()
	s.entries[wordID] = Entry{
		WordID:    wordID,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.local.Put(keyProgress, s.entries)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if s.remote != nil {
		s.syncs.Add(1)
		go func() {
			defer s.syncs.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.remote.UpsertProgress(ctx, s.userID, wordID, status); err != nil {
				s.logger.Warn("progress sync failed, local state kept",
					zap.String("word_id", wordID),
					zap.Error(err),
				)
			}
		}()
	}
	return nil
}

// Status returns the stored status for a word. The bool distinguishes
// "never assessed" from any known status value.
func (s *ProgressStore) Status(wordID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[wordID]
	if !ok {
		return "", false
	}
	return e.Status, true
}

// Entries returns a copy of all tracked entries.
func (s *ProgressStore) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

// Wait blocks until all in-flight sync attempts have settled.
func (s *ProgressStore) Wait() {
	s.syncs.Wait()
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

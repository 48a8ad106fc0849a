package vocab

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odemir/folio/internal/localstore"
	"github.com/odemir/folio/internal/models"
)

type fakeSyncer struct {
	mu       sync.Mutex
	upserts  []string
	err      error
	existing []*models.ProgressEntry
}

func (f *fakeSyncer) UpsertProgress(ctx context.Context, userID, wordID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, wordID+":"+status)
	return nil
}

func (f *fakeSyncer) ListProgress(ctx context.Context, userID string) ([]*models.ProgressEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.existing, nil
}

func (f *fakeSyncer) upsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserts)
}

func TestProgressStore_SetStatusMirrorsToServer(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	remote := &fakeSyncer{}

	store, err := OpenProgress(local, remote, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, store.SetStatus("w1", models.StatusLearning))
	store.Wait()

	status, ok := store.Status("w1")
	assert.True(t, ok)
	assert.Equal(t, models.StatusLearning, status)
	assert.Equal(t, 1, remote.upsertCount())
}

func TestProgressStore_SyncFailureKeepsLocalState(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	remote := &fakeSyncer{err: errors.New("server down")}

	store, err := OpenProgress(local, remote, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, store.SetStatus("w1", models.StatusKnown))
	store.Wait()

	// The local update survives the failed sync.
	status, ok := store.Status("w1")
	assert.True(t, ok)
	assert.Equal(t, models.StatusKnown, status)
}

func TestProgressStore_OneEntryPerWord(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	store, err := OpenProgress(local, nil, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, store.SetStatus("w1", models.StatusTarget))
	require.NoError(t, store.SetStatus("w1", models.StatusLearning))
	require.NoError(t, store.SetStatus("w1", models.StatusKnown))

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, models.StatusKnown, entries[0].Status)
}

func TestProgressStore_RejectsInvalidInput(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	store, err := OpenProgress(local, nil, zap.NewNop())
	require.NoError(t, err)

	assert.Error(t, store.SetStatus("", models.StatusKnown))
	assert.Error(t, store.SetStatus("w1", "mastered"))

	_, ok := store.Status("w1")
	assert.False(t, ok)
}

func TestProgressStore_UserIDStableAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	local, err := localstore.Open(dir)
	require.NoError(t, err)

	first, err := OpenProgress(local, nil, zap.NewNop())
	require.NoError(t, err)
	require.NotEmpty(t, first.UserID())
	require.NoError(t, first.SetStatus("w1", models.StatusLearning))

	second, err := OpenProgress(local, nil, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, first.UserID(), second.UserID())
	status, ok := second.Status("w1")
	assert.True(t, ok)
	assert.Equal(t, models.StatusLearning, status)
}

func TestProgressStore_PullsServerStateWhenLocalEmpty(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	remote := &fakeSyncer{existing: []*models.ProgressEntry{
		{WordID: "w1", Status: models.StatusKnown, UpdatedAt: time.Now().UTC()},
		{WordID: "w2", Status: models.StatusTarget, UpdatedAt: time.Now().UTC()},
	}}

	store, err := OpenProgress(local, remote, zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, store.Entries(), 2)
	status, ok := store.Status("w2")
	assert.True(t, ok)
	assert.Equal(t, models.StatusTarget, status)
}

func TestProgressStore_LocalStateWinsOverServer(t *testing.T) {
	dir := t.TempDir()
	local, err := localstore.Open(dir)
	require.NoError(t, err)

	seeded, err := OpenProgress(local, nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, seeded.SetStatus("w1", models.StatusLearning))

	remote := &fakeSyncer{existing: []*models.ProgressEntry{
		{WordID: "w1", Status: models.StatusKnown},
	}}
	store, err := OpenProgress(local, remote, zap.NewNop())
	require.NoError(t, err)

	// Non-empty local state is never overwritten by the server copy.
	status, _ := store.Status("w1")
	assert.Equal(t, models.StatusLearning, status)
}

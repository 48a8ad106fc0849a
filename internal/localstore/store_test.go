package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Put("settings", doc{Name: "main", Count: 3}))

	var got doc
	found, err := store.Get("settings", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc{Name: "main", Count: 3}, got)
}

func TestStore_MissingKey(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	var got map[string]string
	found, err := store.Get("nope", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, store.Has("nope"))
}

func TestStore_OverwriteAndDelete(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("k", "first"))
	require.NoError(t, store.Put("k", "second"))

	var got string
	found, err := store.Get("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", got)

	require.NoError(t, store.Delete("k"))
	assert.False(t, store.Has("k"))

	// Deleting again is a no-op.
	require.NoError(t, store.Delete("k"))
}

func TestStore_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("k", []int{1, 2, 3}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", filepath.Base(entries[0].Name()))
}

func TestOpen_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put("k", 1))
	assert.True(t, store.Has("k"))
}

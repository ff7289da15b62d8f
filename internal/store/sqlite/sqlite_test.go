package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/curator/internal/store"
)

func openTestStore(t *testing.T, path, profile string) *Store {
	t.Helper()
	s, err := Open(context.Background(), path, profile)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "curator.db"), "default")
	s.now = func() time.Time { return time.UnixMilli(1769663499949) }

	_, ok, err := s.Get(ctx, store.SlotCollections)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetMany(ctx, map[store.Slot]string{
		store.SlotCollections: "[]",
		store.SlotVersion:     "1",
	}))
	require.NoError(t, s.SetMany(ctx, map[store.Slot]string{store.SlotVersion: "2"}))

	v, ok, err := s.Get(ctx, store.SlotVersion)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v, "second write overwrites")

	at, ok, err := s.UpdatedAt(ctx, store.SlotVersion)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1769663499949), at.UnixMilli())

	require.NoError(t, s.Delete(ctx, store.SlotCollections, store.SlotVersion))
	_, ok, err = s.Get(ctx, store.SlotVersion)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Ping(ctx))
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "curator.db")

	first, err := Open(ctx, path, "default")
	require.NoError(t, err)
	require.NoError(t, first.SetMany(ctx, map[store.Slot]string{store.SlotBookmarks: `["a"]`}))
	require.NoError(t, first.Close())

	second := openTestStore(t, path, "default")
	v, ok, err := second.Get(ctx, store.SlotBookmarks)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a"]`, v)
}

func TestProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "curator.db")

	alice := openTestStore(t, path, "alice")
	require.NoError(t, alice.SetMany(ctx, map[store.Slot]string{store.SlotViewMode: `"list"`}))

	bob := openTestStore(t, path, "bob")
	_, ok, err := bob.Get(ctx, store.SlotViewMode)
	require.NoError(t, err)
	assert.False(t, ok)
}

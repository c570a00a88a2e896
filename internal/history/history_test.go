package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-scout/internal/jobs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMarkSeenAndKeys(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	keys, err := store.SeenKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	postings := []*jobs.Posting{
		{Title: "Go Developer", Company: "Acme", URL: "https://acme.example/1"},
		nil,
		{Title: "SRE", Company: "Globex"},
	}
	require.NoError(t, store.MarkSeen(ctx, postings))
	// marking twice keeps one row per posting
	require.NoError(t, store.MarkSeen(ctx, postings[:1]))

	keys, err = store.SeenKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Go Developer_Acme", "SRE_Globex"}, keys)
}

func TestListMostRecentFirst(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	clock := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }
	require.NoError(t, store.MarkSeen(ctx, []*jobs.Posting{{Title: "Old", Company: "Acme"}}))

	clock = clock.Add(time.Hour)
	require.NoError(t, store.MarkSeen(ctx, []*jobs.Posting{{Title: "New", Company: "Acme", URL: "https://acme.example/new"}}))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "New", entries[0].Title)
	assert.Equal(t, "https://acme.example/new", entries[0].URL)
	assert.True(t, entries[0].SeenAt.Equal(clock))

	limited, err := store.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestReopenKeepsHistory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.MarkSeen(ctx, []*jobs.Posting{{Title: "SRE", Company: "Globex"}}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	keys, err := reopened.SeenKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"SRE_Globex"}, keys)
}

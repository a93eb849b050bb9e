package recordstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			payloads := [][]byte{
				[]byte(`[{"id":"a"},{"id":"b"}]`),
				[]byte(`[]`),
			}

			for _, payload := range payloads {
				require.NoError(t, store.Save(ctx, CollectionVideos, payload))

				got, err := store.Load(ctx, CollectionVideos)
				require.NoError(t, err)
				assert.Equal(t, payload, got)
			}
		})
	}
}

func TestStore_LoadAbsent(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := store.Load(ctx, "missing")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, CollectionSession, []byte(`"token"`)))
			require.NoError(t, store.Delete(ctx, CollectionSession))

			got, err := store.Load(ctx, CollectionSession)
			require.NoError(t, err)
			assert.Nil(t, got)

			// deleting an absent collection is not an error
			require.NoError(t, store.Delete(ctx, CollectionSession))
		})
	}
}

func TestMemoryStore_CopiesPayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	payload := []byte(`[1,2,3]`)
	require.NoError(t, store.Save(ctx, CollectionAccounts, payload))

	payload[0] = 'x'

	got, err := store.Load(ctx, CollectionAccounts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)

	got[1] = 'y'
	again, err := store.Load(ctx, CollectionAccounts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), again)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, CollectionAccounts, []byte(`["old"]`)))
	require.NoError(t, store.Save(ctx, CollectionAccounts, []byte(`["new"]`)))

	got, err := store.Load(ctx, CollectionAccounts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["new"]`), got)

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "accounts.json", entries[0].Name())
}

func TestFileStore_LoadReturnsRawBytes(t *testing.T) {
	// Corrupt content is passed through untouched; recovery is the
	// repository's job.
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "videos.json"), []byte("{not json"), 0o600))

	got, err := store.Load(ctx, CollectionVideos)
	require.NoError(t, err)
	assert.Equal(t, []byte("{not json"), got)
}

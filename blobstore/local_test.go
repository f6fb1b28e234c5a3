package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	t.Run("missing blob", func(t *testing.T) {
		_, err := store.Read(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)

		exists, err := store.Exists(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("write and read back", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "sub/dir/blob.dki", []byte("payload")))

		data, err := store.Read(ctx, "sub/dir/blob.dki")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)

		exists, err := store.Exists(ctx, "sub/dir/blob.dki")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "blob", []byte("v1")))
		require.NoError(t, store.Write(ctx, "blob", []byte("v2")))

		data, err := store.Read(ctx, "blob")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "gone", []byte("x")))
		require.NoError(t, store.Delete(ctx, "gone"))

		exists, err := store.Exists(ctx, "gone")
		require.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, store.Delete(ctx, "gone"), "deleting a missing blob is fine")
	})
}

func TestLocalStoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Write(ctx, "blob", []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "blob", filepath.Base(entries[0].Name()))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Read(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Write(ctx, "blob", []byte("payload")))

	data, err := store.Read(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	// Mutating the returned slice must not affect the stored blob.
	data[0] = 'X'
	again, err := store.Read(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), again)

	exists, err := store.Exists(ctx, "blob")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "blob"))
	exists, err = store.Exists(ctx, "blob")
	require.NoError(t, err)
	assert.False(t, exists)
}

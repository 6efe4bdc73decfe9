package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStore_ReadMissingKey(t *testing.T) {
	store, err := openFileStore(t.TempDir(), newDiscardLogger())
	require.NoError(t, err)
	defer store.bucket.Close()

	data, err := store.Read(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStore_WriteThenRead(t *testing.T) {
	store, err := openFileStore(t.TempDir(), newDiscardLogger())
	require.NoError(t, err)
	defer store.bucket.Close()

	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "favorites", []byte(`{"products":[],"stores":[]}`)))

	data, err := store.Read(ctx, "favorites")
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[],"stores":[]}`, string(data))
}

func TestFileStore_WriteOverwrites(t *testing.T) {
	store, err := openFileStore(t.TempDir(), newDiscardLogger())
	require.NoError(t, err)
	defer store.bucket.Close()

	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "key", []byte("first")))
	require.NoError(t, store.Write(ctx, "key", []byte("second")))

	data, err := store.Read(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestFileStore_WatchSignalsOnExternalWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := openFileStore(dir, newDiscardLogger())
	require.NoError(t, err)
	defer store.bucket.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := store.Watch(ctx, "favorites")
	require.NoError(t, err)

	// Simulate another process rewriting the key's file directly.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "favorites"), []byte(`{}`), 0o644))

	select {
	case _, ok := <-events:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a watch signal after external write")
	}
}

func TestFileStore_WatchClosesOnContextCancel(t *testing.T) {
	store, err := openFileStore(t.TempDir(), newDiscardLogger())
	require.NoError(t, err)
	defer store.bucket.Close()

	ctx, cancel := context.WithCancel(context.Background())

	events, err := store.Watch(ctx, "favorites")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the watch channel to close after cancel")
	}
}

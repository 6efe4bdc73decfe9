package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesService_TogglePairIsIdempotent(t *testing.T) {
	store := newFakeKeyValueStore()
	svc := NewFavoritesService(store, newDiscardLogger())
	ctx := context.Background()
	svc.Start(ctx)

	svc.ToggleProductFavorite(ctx, "p1")
	assert.True(t, svc.IsProductFavorite("p1"))

	svc.ToggleProductFavorite(ctx, "p1")
	assert.False(t, svc.IsProductFavorite("p1"))

	snapshot := svc.Snapshot()
	assert.Empty(t, snapshot.Products)
	assert.Empty(t, snapshot.Stores)
}

func TestFavoritesService_LoadsPersistedRecordWithoutWriting(t *testing.T) {
	store := newFakeKeyValueStore()
	store.data[FavoritesKey] = []byte(`{"products":["p1"],"stores":[]}`)

	svc := NewFavoritesService(store, newDiscardLogger())
	svc.Start(context.Background())

	assert.True(t, svc.IsProductFavorite("p1"))
	assert.False(t, svc.IsStoreFavorite("p1"))

	// A plain load mutates nothing, so nothing is written back.
	assert.Zero(t, store.writeCount())
}

func TestFavoritesService_CorruptRecordFallsBackToEmpty(t *testing.T) {
	store := newFakeKeyValueStore()
	store.data[FavoritesKey] = []byte("not json")

	svc := NewFavoritesService(store, newDiscardLogger())
	svc.Start(context.Background())

	snapshot := svc.Snapshot()
	assert.Empty(t, snapshot.Products)
	assert.Empty(t, snapshot.Stores)

	// The service is usable after the fallback.
	svc.ToggleStoreFavorite(context.Background(), "s1")
	assert.True(t, svc.IsStoreFavorite("s1"))
}

func TestFavoritesService_ReadFailureStartsEmpty(t *testing.T) {
	store := newFakeKeyValueStore()
	store.readErr = assert.AnError

	svc := NewFavoritesService(store, newDiscardLogger())
	svc.Start(context.Background())

	snapshot := svc.Snapshot()
	assert.Empty(t, snapshot.Products)
	assert.Empty(t, snapshot.Stores)
}

func TestFavoritesService_SetsAreIndependent(t *testing.T) {
	store := newFakeKeyValueStore()
	svc := NewFavoritesService(store, newDiscardLogger())
	ctx := context.Background()
	svc.Start(ctx)

	svc.ToggleProductFavorite(ctx, "x1")
	svc.ToggleStoreFavorite(ctx, "x1")

	assert.True(t, svc.IsProductFavorite("x1"))
	assert.True(t, svc.IsStoreFavorite("x1"))

	svc.ToggleProductFavorite(ctx, "x1")

	assert.False(t, svc.IsProductFavorite("x1"))
	assert.True(t, svc.IsStoreFavorite("x1"))
}

func TestFavoritesService_PersistFailureKeepsMemoryState(t *testing.T) {
	store := newFakeKeyValueStore()
	store.writeErr = assert.AnError

	svc := NewFavoritesService(store, newDiscardLogger())
	ctx := context.Background()
	svc.Start(ctx)

	svc.ToggleProductFavorite(ctx, "p1")

	// The write failed silently; the in-memory mutation stands.
	assert.True(t, svc.IsProductFavorite("p1"))
	assert.Empty(t, store.stored(FavoritesKey))
}

func TestFavoritesService_MutationsBeforeStartAreInert(t *testing.T) {
	store := newFakeKeyValueStore()
	svc := NewFavoritesService(store, newDiscardLogger())
	ctx := context.Background()

	svc.ToggleProductFavorite(ctx, "p1")
	svc.ToggleStoreFavorite(ctx, "s1")
	svc.ClearFavorites(ctx)

	assert.False(t, svc.IsProductFavorite("p1"))
	assert.False(t, svc.IsStoreFavorite("s1"))
	assert.Zero(t, store.writeCount())
}

func TestFavoritesService_PersistedLayout(t *testing.T) {
	store := newFakeKeyValueStore()
	svc := NewFavoritesService(store, newDiscardLogger())
	ctx := context.Background()
	svc.Start(ctx)

	svc.ToggleProductFavorite(ctx, "p1")

	require.NotEmpty(t, store.stored(FavoritesKey))
	assert.JSONEq(t, `{"products":["p1"],"stores":[]}`, string(store.stored(FavoritesKey)))
}

func TestFavoritesService_ClearResetsBothSets(t *testing.T) {
	store := newFakeKeyValueStore()
	svc := NewFavoritesService(store, newDiscardLogger())
	ctx := context.Background()
	svc.Start(ctx)

	svc.ToggleProductFavorite(ctx, "p1")
	svc.ToggleStoreFavorite(ctx, "s1")
	svc.ClearFavorites(ctx)

	assert.False(t, svc.IsProductFavorite("p1"))
	assert.False(t, svc.IsStoreFavorite("s1"))
	assert.JSONEq(t, `{"products":[],"stores":[]}`, string(store.stored(FavoritesKey)))
}

func TestFavoritesService_StartTwiceDoesNotReload(t *testing.T) {
	store := newFakeKeyValueStore()
	svc := NewFavoritesService(store, newDiscardLogger())
	ctx := context.Background()
	svc.Start(ctx)

	svc.ToggleProductFavorite(ctx, "p1")

	// A second Start must not clobber in-memory state with a re-read.
	store.data[FavoritesKey] = []byte(`{"products":[],"stores":[]}`)
	svc.Start(ctx)

	assert.True(t, svc.IsProductFavorite("p1"))
}

package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
)

// FavoritesKey is the fixed storage key for the favorites record. It is
// singly owned by the favorites service; no other component reads or
// writes it.
const FavoritesKey = "skt-marketplace-favorites"

// favoritesService implements the FavoritesUsecase interface. All state
// lives behind one mutex, so back-to-back toggles always see the latest
// membership.
type favoritesService struct {
	store  service.KeyValueStore
	logger *slog.Logger

	mu     sync.RWMutex
	loaded bool
	favs   entity.Favorites
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(store service.KeyValueStore, logger *slog.Logger) usecase.FavoritesUsecase {
	return &favoritesService{
		store:  store,
		logger: logger,
		favs:   entity.NewFavorites(),
	}
}

// Start loads the persisted record and marks the service LOADED. The
// transition is one-way and happens at most once; persisting never begins
// before the load attempt completes, so a slow startup cannot overwrite a
// stored record with the empty default.
func (srv *favoritesService) Start(ctx context.Context) {
	srv.mu.Lock()
	if srv.loaded {
		srv.mu.Unlock()

		return
	}
	srv.favs = srv.read(ctx)
	srv.loaded = true
	srv.mu.Unlock()

	if watcher, ok := srv.store.(service.KeyWatcher); ok {
		srv.watch(ctx, watcher)
	}
}

// IsProductFavorite reports membership of a product id. Unknown ids and
// queries before load report false.
func (srv *favoritesService) IsProductFavorite(id string) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.favs.HasProduct(id)
}

// IsStoreFavorite reports membership of a store id.
func (srv *favoritesService) IsStoreFavorite(id string) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.favs.HasStore(id)
}

// ToggleProductFavorite flips membership of a product id and persists the
// whole record.
func (srv *favoritesService) ToggleProductFavorite(ctx context.Context, id string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.loaded {
		srv.logger.Debug("favorites mutation before load, ignored", slog.String("id", id))

		return
	}
	srv.favs.Products = toggle(srv.favs.Products, id)
	srv.persistLocked(ctx)
}

// ToggleStoreFavorite flips membership of a store id and persists the
// whole record. The two sets are independent.
func (srv *favoritesService) ToggleStoreFavorite(ctx context.Context, id string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.loaded {
		srv.logger.Debug("favorites mutation before load, ignored", slog.String("id", id))

		return
	}
	srv.favs.Stores = toggle(srv.favs.Stores, id)
	srv.persistLocked(ctx)
}

// ClearFavorites resets both sets and persists immediately.
func (srv *favoritesService) ClearFavorites(ctx context.Context) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.loaded {
		return
	}
	srv.favs = entity.NewFavorites()
	srv.persistLocked(ctx)
}

// Snapshot returns a copy of the current record.
func (srv *favoritesService) Snapshot() entity.Favorites {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.favs.Clone()
}

// read loads and decodes the persisted record. Absent, unreadable or
// corrupt records all degrade to the empty default; none of them is a
// fatal condition.
func (srv *favoritesService) read(ctx context.Context) entity.Favorites {
	favs := entity.NewFavorites()

	raw, err := srv.store.Read(ctx, FavoritesKey)
	if err != nil {
		srv.logger.Warn("favorites load failed, starting empty", slog.Any("error", err))

		return favs
	}
	if len(raw) == 0 {
		return favs
	}

	if err := json.Unmarshal(raw, &favs); err != nil {
		srv.logger.Warn("discarding corrupt favorites record", slog.Any("error", err))

		return entity.NewFavorites()
	}
	favs.Normalize()

	return favs
}

// persistLocked serializes and writes the whole record. This is the single
// place where persistence failure is swallowed: the write is
// fire-and-forget, the in-memory mutation stands, and the caller never
// sees an error. Must be called with the write lock held.
func (srv *favoritesService) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(srv.favs)
	if err != nil {
		srv.logger.Warn("favorites serialize failed", slog.Any("error", err))

		return
	}

	if err := srv.store.Write(ctx, FavoritesKey, raw); err != nil {
		srv.logger.Warn("favorites persist failed, keeping in-memory state", slog.Any("error", err))
	}
}

// watch reloads the record when another process writes the storage key.
// Reloading after our own write is harmless; the reload is idempotent.
func (srv *favoritesService) watch(ctx context.Context, watcher service.KeyWatcher) {
	events, err := watcher.Watch(ctx, FavoritesKey)
	if err != nil {
		srv.logger.Debug("favorites watch unavailable", slog.Any("error", err))

		return
	}

	go func() {
		for range events {
			favs := srv.read(ctx)
			srv.mu.Lock()
			srv.favs = favs
			srv.mu.Unlock()
		}
	}()
}

// toggle removes id when present, appends it when absent.
func toggle(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}

	return append(ids, id)
}

package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// FavoritesUsecase owns the device-local favorites record. Queries are
// synchronous against in-memory state; mutations persist fire-and-forget.
// None of the operations ever fail toward the caller: load and persist
// problems degrade to safe defaults and are only logged.
type FavoritesUsecase interface {
	// Start performs the one-way UNLOADED -> LOADED transition: it reads
	// the persisted record, falling back to the empty default when the
	// record is absent or unparsable. Mutations before Start are inert.
	Start(ctx context.Context)

	IsProductFavorite(id string) bool
	IsStoreFavorite(id string) bool

	ToggleProductFavorite(ctx context.Context, id string)
	ToggleStoreFavorite(ctx context.Context, id string)

	// ClearFavorites resets both sets to empty and persists immediately.
	ClearFavorites(ctx context.Context)

	// Snapshot returns a copy of the current record.
	Snapshot() entity.Favorites
}

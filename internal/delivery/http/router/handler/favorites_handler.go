package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FavoritesHandler exposes the device-local favorites record over HTTP.
type FavoritesHandler struct {
	favorites usecase.FavoritesUsecase
}

// NewFavoritesHandler is the constructor for FavoritesHandler, injected by Fx.
func NewFavoritesHandler(favorites usecase.FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// GetFavorites returns both favorite id sets.
func (h *FavoritesHandler) GetFavorites(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.favorites.Snapshot(), "Favorites retrieved successfully")
}

// IsProductFavorite reports whether a product id is favorited.
func (h *FavoritesHandler) IsProductFavorite(c echo.Context) error {
	id := c.Param("id")

	return response.Success(c, http.StatusOK, map[string]bool{"favorite": h.favorites.IsProductFavorite(id)}, "")
}

// IsStoreFavorite reports whether a store id is favorited.
func (h *FavoritesHandler) IsStoreFavorite(c echo.Context) error {
	id := c.Param("id")

	return response.Success(c, http.StatusOK, map[string]bool{"favorite": h.favorites.IsStoreFavorite(id)}, "")
}

// ToggleProductFavorite flips a product id in or out of the set.
func (h *FavoritesHandler) ToggleProductFavorite(c echo.Context) error {
	id := c.Param("id")
	h.favorites.ToggleProductFavorite(c.Request().Context(), id)

	return response.Success(c, http.StatusOK, map[string]bool{"favorite": h.favorites.IsProductFavorite(id)}, "Favorite toggled")
}

// ToggleStoreFavorite flips a store id in or out of the set.
func (h *FavoritesHandler) ToggleStoreFavorite(c echo.Context) error {
	id := c.Param("id")
	h.favorites.ToggleStoreFavorite(c.Request().Context(), id)

	return response.Success(c, http.StatusOK, map[string]bool{"favorite": h.favorites.IsStoreFavorite(id)}, "Favorite toggled")
}

// ClearFavorites resets both sets.
func (h *FavoritesHandler) ClearFavorites(c echo.Context) error {
	h.favorites.ClearFavorites(c.Request().Context())

	return response.Success(c, http.StatusOK, h.favorites.Snapshot(), "Favorites cleared")
}

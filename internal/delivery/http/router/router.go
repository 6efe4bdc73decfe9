// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	FavoritesHandler  *handler.FavoritesHandler
	OnboardingHandler *handler.OnboardingHandler
	CatalogHandler    *handler.CatalogHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	favoritesHandler  *handler.FavoritesHandler
	onboardingHandler *handler.OnboardingHandler
	catalogHandler    *handler.CatalogHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		favoritesHandler:  params.FavoritesHandler,
		onboardingHandler: params.OnboardingHandler,
		catalogHandler:    params.CatalogHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session state machine routes
	sessionGroup := e.Group("/session")
	{
		e.GET("/session", r.sessionHandler.GetSession)
		sessionGroup.POST("/signin", r.sessionHandler.SignIn)
		sessionGroup.POST("/signout", r.sessionHandler.SignOut)
		sessionGroup.POST("/refresh", r.sessionHandler.Refresh)
	}

	// Device-local favorites routes
	favoritesGroup := e.Group("/favorites")
	{
		e.GET("/favorites", r.favoritesHandler.GetFavorites)
		e.DELETE("/favorites", r.favoritesHandler.ClearFavorites)
		favoritesGroup.GET("/products/:id", r.favoritesHandler.IsProductFavorite)
		favoritesGroup.GET("/stores/:id", r.favoritesHandler.IsStoreFavorite)
		favoritesGroup.POST("/products/:id/toggle", r.favoritesHandler.ToggleProductFavorite)
		favoritesGroup.POST("/stores/:id/toggle", r.favoritesHandler.ToggleStoreFavorite)
	}

	// Public marketplace browsing
	e.GET("/stores", r.catalogHandler.ListStores)
	e.GET("/stores/:id", r.catalogHandler.GetStore)
	e.GET("/stores/:id/qr", r.catalogHandler.GetStoreQR)
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/products/:id/reviews", r.catalogHandler.ListProductReviews)
	e.POST("/products/:id/reviews", r.catalogHandler.CreateReview)

	// Seller routes that require a verified token matching the session
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	{
		sellerGroup.POST("/profile", r.onboardingHandler.CreateSellerProfile)
		sellerGroup.PUT("/store", r.onboardingHandler.UpsertStore)
		sellerGroup.GET("/products", r.catalogHandler.ListSellerProducts)
		sellerGroup.POST("/products", r.catalogHandler.CreateProduct)
		sellerGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		sellerGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
	}
}

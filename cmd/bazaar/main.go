package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/firebase"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/firestore"
	"bazaar/internal/infra/qrcode"
	"bazaar/internal/infra/storage"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`

	Session   usecase.SessionUsecase
	Favorites usecase.FavoritesUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firestore.New,
		storage.NewFileStore,
		newKeyValueStore,
	)
}

// newKeyValueStore exposes the file store under its domain interface.
func newKeyValueStore(store *storage.FileStore) service.KeyValueStore {
	return store
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewSellerProfileRepository,
			firestore.NewStoreProfileRepository,
			firestore.NewProductRepository,
			firestore.NewReviewRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewStateHub,
			newAuthProvider,
			auth.NewTokenVerifier,
			newQRCodeService,
		),
	)
}

// newAuthProvider exposes the hub under its domain interface.
func newAuthProvider(hub *auth.StateHub) service.AuthProvider {
	return hub
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "http://localhost:3000")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewFavoritesService,
			impl.NewOnboardingService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewFavoritesHandler,
			handler.NewOnboardingHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	// Load favorites and attach the session machine to the auth hub before
	// any request can arrive.
	params.Favorites.Start(ctx)
	if err := params.Session.Start(ctx); err != nil {
		slog.Error("Failed to start session state machine", slog.Any("error", err))
		os.Exit(1)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Session.Stop()

			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"inlet/config"
	"inlet/internal/delivery"
	"inlet/internal/delivery/api"
	apimiddleware "inlet/internal/delivery/api/middleware"
	"inlet/internal/delivery/api/router/handler"
	"inlet/internal/domain/repository"
	"inlet/internal/domain/service"
	"inlet/internal/infra/auth"
	logs "inlet/internal/infra/log"
	"inlet/internal/infra/persistence/postgres"
	"inlet/internal/infra/provider"
	"inlet/internal/infra/pubsub"
	"inlet/internal/infra/qrcode"
	"inlet/internal/infra/vault"
	"inlet/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		vault.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewConnectionRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewTransactionManager,
			newOAuthStateStore,
		),
	)
}

// newOAuthStateStore creates the authorization state store when its
// configuration is present. Without it the connection service rejects
// authorization flows per request instead of failing at boot.
func newOAuthStateStore(cfg *config.Config, db *gorm.DB) repository.OAuthStateStore {
	if cfg.OAuthState == nil {
		return nil
	}

	return postgres.NewOAuthStateStore(db, cfg.OAuthState.TTL)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
		provider.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewConnectionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewConnectionHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

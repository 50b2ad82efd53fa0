package main

import (
	"context"
	"log/slog"
	"os"

	"inlet/config"
	"inlet/internal/delivery"
	"inlet/internal/delivery/worker"
	"inlet/internal/delivery/worker/handler"
	"inlet/internal/domain/repository"
	logs "inlet/internal/infra/log"
	"inlet/internal/infra/persistence/postgres"
	"inlet/internal/infra/pubsub"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectHandler(),
		injectDelivery(),
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
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewConnectionRepository,
			postgres.NewTransactionManager,
			newOAuthStateStore,
		),
	)
}

// newOAuthStateStore creates the authorization state store when its
// configuration is present. The sweep skips state purging without it.
func newOAuthStateStore(cfg *config.Config, db *gorm.DB) repository.OAuthStateStore {
	if cfg.OAuthState == nil {
		return nil
	}

	return postgres.NewOAuthStateStore(db, cfg.OAuthState.TTL)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMaintenanceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

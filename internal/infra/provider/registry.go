package provider

import (
	"log/slog"

	"inlet/internal/domain/entity"
	"inlet/internal/domain/service"

	"go.uber.org/fx"
)

// RegistryParams collects every adapter registered into the value group.
type RegistryParams struct {
	fx.In

	Adapters []service.ProviderAdapter `group:"provider_adapters"`
	Logger   *slog.Logger
}

// NewAdapterRegistry indexes the configured adapters by provider. Adapter
// constructors return nil for platforms the deployment has no OAuth client
// for; those slots are skipped, and requests for them fail per call.
func NewAdapterRegistry(params RegistryParams) map[entity.Provider]service.ProviderAdapter {
	registry := make(map[entity.Provider]service.ProviderAdapter, len(params.Adapters))
	for _, adapter := range params.Adapters {
		if adapter == nil {
			continue
		}
		registry[adapter.Provider()] = adapter
		params.Logger.Info("Registered provider adapter",
			slog.String("provider", adapter.Provider().String()),
		)
	}

	if len(registry) == 0 {
		params.Logger.Warn("No provider adapters configured, connection flows will be rejected")
	}

	return registry
}

// Module provides the adapter FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewYouTubeAdapter, fx.ResultTags(`group:"provider_adapters"`)),
		fx.Annotate(NewGmailAdapter, fx.ResultTags(`group:"provider_adapters"`)),
		fx.Annotate(NewSpotifyAdapter, fx.ResultTags(`group:"provider_adapters"`)),
	),
	fx.Provide(NewAdapterRegistry),
)

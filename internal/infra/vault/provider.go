// Package vault encrypts and decrypts provider credentials before they
// touch the database. Plaintext token material must never be persisted,
// so every storage path goes through a TokenCipher from this package.
package vault

import (
	"context"
	"log/slog"

	"inlet/config"
	"inlet/internal/domain/constants"
	"inlet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CipherParams holds dependencies for TokenCipher, injected by Fx
type CipherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenCipher creates a TokenCipher based on configuration.
//
// A missing vault section yields a nil cipher rather than an error: the
// API must still boot so read-only endpoints keep working, and the
// connection service rejects each token operation individually.
func NewTokenCipher(params CipherParams) (service.TokenCipher, error) {
	cfg := params.Config.Vault
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Vault not configured, token operations will be rejected")

		return nil, nil
	}

	switch cfg.Provider {
	case constants.VaultProviderLocal:
		if cfg.MasterKey == "" {
			return nil, errors.New("master key is required for local vault provider")
		}
		logger.Info("Using local AES-GCM token cipher")

		return NewAESTokenCipher(cfg.MasterKey)

	case constants.VaultProviderKeeper:
		if cfg.KeeperURL == "" {
			return nil, errors.New("keeper URL is required for keeper vault provider")
		}
		logger.Info("Using secrets keeper token cipher",
			slog.String("keeper_url", cfg.KeeperURL),
		)

		cipher, err := NewKeeperTokenCipher(params.Ctx, cfg.KeeperURL)
		if err != nil {
			return nil, err
		}

		// Register lifecycle hook to close the keeper on shutdown
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing token cipher keeper")

				return cipher.Close()
			},
		})

		return cipher, nil

	default:
		return nil, errors.Errorf("unknown vault provider: %s", cfg.Provider)
	}
}

// Module provides the vault FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenCipher),
)

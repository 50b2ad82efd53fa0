package vault

import (
	"context"
	"encoding/hex"

	domainerrors "inlet/internal/domain/errors"

	"github.com/pkg/errors"
	"gocloud.dev/secrets"
	// Registers the base64key:// keeper scheme used by self-hosted deployments.
	_ "gocloud.dev/secrets/localsecrets"
)

// KeeperTokenCipher implements service.TokenCipher on top of a Go CDK
// secrets keeper, so deployments can point the vault at a managed KMS by
// URL instead of holding key material in their own config.
type KeeperTokenCipher struct {
	keeper *secrets.Keeper
}

// NewKeeperTokenCipher opens the keeper identified by keeperURL.
func NewKeeperTokenCipher(ctx context.Context, keeperURL string) (*KeeperTokenCipher, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open secrets keeper")
	}

	return &KeeperTokenCipher{keeper: keeper}, nil
}

// Encrypt seals the plaintext through the keeper and hex-encodes the result.
func (c *KeeperTokenCipher) Encrypt(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.Wrap(domainerrors.ErrCryptoFailure, "refusing to encrypt empty plaintext")
	}

	sealed, err := c.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrCryptoFailure, "keeper encrypt failed")
	}

	return hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Tampered ciphertexts fail the keeper's
// authentication and surface as a crypto failure.
func (c *KeeperTokenCipher) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	data, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrCryptoFailure, "ciphertext is not valid hex")
	}

	plaintext, err := c.keeper.Decrypt(ctx, data)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrCryptoFailure, "keeper decrypt failed")
	}

	return string(plaintext), nil
}

// Close releases the keeper.
func (c *KeeperTokenCipher) Close() error {
	return c.keeper.Close()
}

package vault

import (
	"context"
	"encoding/hex"
	"testing"

	domainerrors "inlet/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const testKeeperURL = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl8="

func TestKeeperTokenCipher_EncryptDecryptRoundTrip(t *testing.T) {
	ctx := context.Background()

	cipher, err := NewKeeperTokenCipher(ctx, testKeeperURL)
	assert.NoError(t, err)
	assert.NotNil(t, cipher)
	defer cipher.Close()

	plaintext := "spotify-refresh-token-sample"

	encrypted, err := cipher.Encrypt(ctx, plaintext)
	assert.NoError(t, err)
	assert.NotEmpty(t, encrypted)
	assert.NotContains(t, encrypted, plaintext)

	decrypted, err := cipher.Decrypt(ctx, encrypted)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestKeeperTokenCipher_TamperedCiphertext(t *testing.T) {
	ctx := context.Background()

	cipher, err := NewKeeperTokenCipher(ctx, testKeeperURL)
	assert.NoError(t, err)
	defer cipher.Close()

	encrypted, err := cipher.Encrypt(ctx, "secret-token")
	assert.NoError(t, err)

	raw, err := hex.DecodeString(encrypted)
	assert.NoError(t, err)
	raw[len(raw)-1] ^= 0x01

	_, err = cipher.Decrypt(ctx, hex.EncodeToString(raw))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCryptoFailure))
}

func TestKeeperTokenCipher_InvalidKeeperURL(t *testing.T) {
	cipher, err := NewKeeperTokenCipher(context.Background(), "nosuchscheme://key")
	assert.Error(t, err)
	assert.Nil(t, cipher)
}

package service

import "context"

// TokenCipher is the credential vault's encryption boundary. Everything
// that touches a ProviderConnection row goes through it: plaintext token
// material exists only between a provider response and an Encrypt call.
// Implementations must use authenticated encryption (a tampered
// ciphertext fails to decrypt instead of returning garbage) and derive
// their key from process-wide configuration, never from request data.
type TokenCipher interface {
	// Encrypt seals a plaintext token into an opaque ciphertext string.
	Encrypt(ctx context.Context, plaintext string) (string, error)

	// Decrypt opens a ciphertext produced by Encrypt. Malformed input,
	// a wrong key and a tampered ciphertext all fail.
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

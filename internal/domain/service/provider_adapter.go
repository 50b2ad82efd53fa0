package service

import (
	"context"

	"inlet/internal/domain/entity"
)

// TokenGrant is the credential material a provider returns from an
// authorization-code exchange or a refresh. Plaintext lives only in
// memory; the vault encrypts it before anything is persisted.
type TokenGrant struct {
	AccessToken  string // Bearer token for the provider's APIs.
	RefreshToken string // Long-lived token used to obtain new access tokens; may be empty.
	ExpiresIn    int64  // Access-token lifetime in seconds, as reported by the provider.
}

// ProviderIdentity is the external account behind a connection, fetched
// with a fresh access token right after the exchange.
type ProviderIdentity struct {
	ProviderUserID string // The provider's stable identifier for the account.
	DisplayName    string // Human-readable account name, for display only.
	Email          string // Account email when the provider exposes one.
}

// ProviderAdapter wraps one external platform's OAuth protocol quirks
// behind a uniform surface. Adding a platform means adding one adapter;
// the connection service never changes.
type ProviderAdapter interface {
	// Provider identifies which platform this adapter speaks for.
	Provider() entity.Provider

	// AuthorizationURL builds the provider consent URL for the given
	// CSRF state. Used by the connect-link flow; web clients that build
	// their own URL never call it.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code (plus the PKCE verifier,
	// empty for server-initiated flows) for tokens. A rejection of the
	// code or verifier surfaces as a client-facing bad request; transport
	// failures and timeouts surface as provider unavailability.
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*TokenGrant, error)

	// FetchIdentity resolves the external account identity using a fresh
	// access token.
	FetchIdentity(ctx context.Context, accessToken string) (*ProviderIdentity, error)
}

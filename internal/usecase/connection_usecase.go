// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inlet/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CallbackInput carries everything the authorization callback hands back.
type CallbackInput struct {
	Provider     entity.Provider
	Code         string
	State        string
	CodeVerifier string // PKCE verifier; empty for server-initiated flows.
}

// RefreshedTokensInput carries token material obtained by an external
// refresh call; this service only stores it.
type RefreshedTokensInput struct {
	Provider     entity.Provider
	AccessToken  string
	RefreshToken string // Empty keeps the previously stored refresh token.
	ExpiresIn    int64  // Access-token lifetime in seconds.
}

// --- Output DTOs ---

// ConnectLinkOutput returns a ready-to-open authorization URL together
// with the server-generated state bound to the caller.
type ConnectLinkOutput struct {
	URL   string
	State string
}

// ConnectionUsecase defines the interface for provider-connection business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ConnectionUsecase interface {
	// RegisterState stores a client-generated CSRF state for one
	// authorization flow, bound to the authenticated user.
	RegisterState(ctx context.Context, userID uuid.UUID, provider entity.Provider, state string) error

	// Callback completes an authorization flow: consumes the state,
	// exchanges the code, fetches the external identity, encrypts the
	// tokens and upserts the connection, reactivating subscriptions that
	// were disconnected. Returns the resulting connection summary.
	Callback(ctx context.Context, userID uuid.UUID, input CallbackInput) (*entity.ConnectionSummary, error)

	// ListConnections reports one entry per known provider: the
	// connection summary, or nil when the provider is not linked.
	ListConnections(ctx context.Context, userID uuid.UUID) (map[entity.Provider]*entity.ConnectionSummary, error)

	// ListSubscriptions reports every subscription the user holds on one
	// platform, whatever its status, so clients can show what a
	// disconnect stopped and what a reconnect will resume.
	ListSubscriptions(ctx context.Context, userID uuid.UUID, provider entity.Provider) ([]*entity.SubscriptionSummary, error)

	// Disconnect severs the link to one provider: deletes the connection
	// and marks every subscription on it DISCONNECTED.
	Disconnect(ctx context.Context, userID uuid.UUID, provider entity.Provider) error

	// StoreRefreshedTokens persists externally refreshed token material
	// on an existing connection and returns it to health.
	StoreRefreshedTokens(ctx context.Context, userID uuid.UUID, input RefreshedTokensInput) error

	// ConnectLink starts a server-initiated flow: generates and registers
	// a state, then returns the provider authorization URL carrying it.
	ConnectLink(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*ConnectLinkOutput, error)

	// ConnectLinkQR renders the ConnectLink authorization URL as a QR
	// PNG for cross-device linking.
	ConnectLinkQR(ctx context.Context, userID uuid.UUID, provider entity.Provider) ([]byte, error)
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus represents the health of a provider connection.
type ConnectionStatus string

const (
	// ConnectionStatusActive indicates the connection holds usable tokens.
	ConnectionStatusActive ConnectionStatus = "ACTIVE"
	// ConnectionStatusExpired indicates the stored access token has passed
	// its expiry and a refresh has not yet been stored.
	ConnectionStatusExpired ConnectionStatus = "EXPIRED"
	// ConnectionStatusDisconnected indicates the user severed the link.
	// Persisted connection rows never carry this value (disconnecting
	// deletes the row), but subscriptions and lifecycle events do.
	ConnectionStatusDisconnected ConnectionStatus = "DISCONNECTED"
)

// String returns the string representation of the ConnectionStatus.
func (s ConnectionStatus) String() string {
	return string(s)
}

// IsValid checks if the ConnectionStatus is a valid value.
func (s ConnectionStatus) IsValid() bool {
	switch s {
	case ConnectionStatusActive, ConnectionStatusExpired, ConnectionStatusDisconnected:
		return true
	default:
		return false
	}
}

// ProviderConnection represents one user's link to one external platform,
// together with the encrypted credentials obtained for it. At most one
// row exists per (user, provider) pair.
type ProviderConnection struct {
	ID                    uuid.UUID        // The unique ID for this connection record.
	UserID                uuid.UUID        // The user who owns this connection.
	Provider              Provider         // The external platform this connection links to.
	ProviderUserID        string           // The account identifier on the provider's side, used for display and idempotency.
	EncryptedAccessToken  string           // Ciphertext of the OAuth access token; plaintext is never persisted.
	EncryptedRefreshToken string           // Ciphertext of the OAuth refresh token; empty when the provider issued none.
	TokenExpiresAt        time.Time        // When the stored access token stops being usable.
	Status                ConnectionStatus // Current health of the connection (ACTIVE or EXPIRED at rest).
	ConnectedAt           time.Time        // When the user first completed the authorization flow for this row.
	LastRefreshedAt       time.Time        // When token material was last replaced (callback or refresh store).
	UpdatedAt             time.Time        // Timestamp of the last modification to this record.
}

// ConnectionSummary is the client-facing view of a connection. It
// deliberately has no token fields, encrypted or otherwise, so listing
// endpoints cannot leak credential material.
type ConnectionSummary struct {
	Provider        Provider         `json:"provider"`          // The external platform.
	ProviderUserID  string           `json:"provider_user_id"`  // The external account identifier, for display.
	Status          ConnectionStatus `json:"status"`            // Current health of the connection.
	TokenExpiresAt  int64            `json:"token_expires_at"`  // Access-token expiry as epoch milliseconds.
	ConnectedAt     int64            `json:"connected_at"`      // First successful authorization as epoch milliseconds.
	LastRefreshedAt int64            `json:"last_refreshed_at"` // Last token replacement as epoch milliseconds.
}

// Summary projects the connection into its client-facing view.
func (c *ProviderConnection) Summary() *ConnectionSummary {
	return &ConnectionSummary{
		Provider:        c.Provider,
		ProviderUserID:  c.ProviderUserID,
		Status:          c.Status,
		TokenExpiresAt:  c.TokenExpiresAt.UnixMilli(),
		ConnectedAt:     c.ConnectedAt.UnixMilli(),
		LastRefreshedAt: c.LastRefreshedAt.UnixMilli(),
	}
}

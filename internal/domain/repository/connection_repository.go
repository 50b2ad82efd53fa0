// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"inlet/internal/domain/entity"
	"inlet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for connection persistence.
var (
	// ErrConnectionNotFound is returned when no connection exists for the
	// requested (user, provider) pair.
	ErrConnectionNotFound = errors.New("provider connection not found")
)

// ConnectionRepository defines the interface for provider-connection
// database operations. It is the only writer of ProviderConnection rows.
type ConnectionRepository interface {
	// UpsertConnection atomically inserts the connection or, when a row
	// already exists for (user, provider), replaces its token material,
	// identity and status. The storage layer guarantees that concurrent
	// upserts for the same pair cannot produce two rows. On return the
	// entity carries the persisted ID and timestamps.
	UpsertConnection(ctx context.Context, conn *entity.ProviderConnection) error

	// FindConnectionByUserAndProvider retrieves the connection for one
	// (user, provider) pair, or ErrConnectionNotFound.
	FindConnectionByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.ProviderConnection, error)

	// FindConnectionsByUser retrieves every connection the user holds.
	FindConnectionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProviderConnection, error)

	// DeleteConnectionByUserAndProvider removes the connection row.
	// Returns ErrConnectionNotFound when no row existed, so callers can
	// distinguish a disconnect of nothing from a successful disconnect.
	DeleteConnectionByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) error

	// UpdateConnectionTokens replaces the encrypted token material on an
	// existing connection, refreshes the bookkeeping timestamps and
	// resets the status to ACTIVE. Returns ErrConnectionNotFound when the
	// connection does not exist; refresh storage never creates rows.
	UpdateConnectionTokens(ctx context.Context, userID uuid.UUID, provider entity.Provider, encryptedAccessToken, encryptedRefreshToken string, tokenExpiresAt time.Time) error

	// FindActiveConnectionsExpiredBefore lists ACTIVE connections whose
	// access token expired before the cutoff. Used by the maintenance
	// sweep to transition them to EXPIRED.
	FindActiveConnectionsExpiredBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entity.ProviderConnection, error)

	// MarkConnectionExpired flips a single connection to EXPIRED. The
	// guard on the current ACTIVE status makes the sweep idempotent;
	// ErrConnectionNotFound is returned when the row is gone or already
	// transitioned.
	MarkConnectionExpired(ctx context.Context, id uuid.UUID) error
}

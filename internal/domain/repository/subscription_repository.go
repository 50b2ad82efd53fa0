// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"inlet/internal/domain/entity"
	"inlet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for subscription-related
// database operations. Subscription rows are owned by the feed service;
// everything here except CreateSubscription only reads rows or flips
// their status to keep them consistent with the provider connection.
type SubscriptionRepository interface {
	// CreateSubscription persists a new subscription row. The feed
	// service is the normal writer; the test-route fixture endpoints
	// stand in for it where they are enabled.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindSubscriptionsByUserAndProvider retrieves every subscription the
	// user holds on one platform, regardless of status.
	FindSubscriptionsByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) ([]*entity.Subscription, error)

	// DisconnectSubscriptions marks every subscription for (user,
	// provider) as DISCONNECTED, including PAUSED ones. This is the
	// unconditional cascade of an explicit disconnect. Returns the number
	// of rows changed.
	DisconnectSubscriptions(ctx context.Context, userID uuid.UUID, provider entity.Provider) (int64, error)

	// DisconnectActiveSubscriptions marks only ACTIVE subscriptions for
	// (user, provider) as DISCONNECTED, leaving PAUSED rows alone. This
	// is the cascade of a token-expiry transition, which is not a user
	// decision and must not erase a deliberate pause. Returns the number
	// of rows changed.
	DisconnectActiveSubscriptions(ctx context.Context, userID uuid.UUID, provider entity.Provider) (int64, error)

	// ReactivateDisconnectedSubscriptions returns DISCONNECTED
	// subscriptions for (user, provider) to ACTIVE. PAUSED rows are never
	// touched; pausing survives reconnects. Returns the number of rows
	// changed.
	ReactivateDisconnectedSubscriptions(ctx context.Context, userID uuid.UUID, provider entity.Provider) (int64, error)
}

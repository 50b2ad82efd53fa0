// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"inlet/internal/domain/entity"
	"inlet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for OAuth state persistence.
var (
	// ErrOAuthStateExists is returned when registering a state token that
	// was already registered. With real entropy this never happens, so a
	// collision is treated as a replay and rejected.
	ErrOAuthStateExists = errors.New("oauth state already registered")

	// ErrOAuthStateInvalid is returned by Consume for every losing case:
	// unknown state, expired state, already-consumed state, or a state
	// registered to a different user. The cases are deliberately
	// indistinguishable so callers learn nothing about state lifetime.
	ErrOAuthStateInvalid = errors.New("oauth state invalid")
)

// OAuthStateStore manages the short-lived, single-use CSRF states of
// authorization flows. Expiry is enforced inside the store's own
// operations; code above it never compares timestamps.
type OAuthStateStore interface {
	// RegisterState persists a new state bound to the initiating user.
	// Fails with ErrOAuthStateExists when the token is already present.
	RegisterState(ctx context.Context, state *entity.OAuthState) error

	// ConsumeState atomically deletes the state iff it exists, is not yet
	// expired, and belongs to the given user. A state is consumed at most
	// once: of two concurrent calls, exactly one succeeds and the other
	// fails with ErrOAuthStateInvalid.
	ConsumeState(ctx context.Context, state string, userID uuid.UUID) error

	// PurgeExpiredStates removes states whose TTL has elapsed and returns
	// the number of rows removed. The maintenance worker calls this;
	// consumption correctness never depends on it.
	PurgeExpiredStates(ctx context.Context) (int64, error)
}

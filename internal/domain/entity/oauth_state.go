// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinStateLength is the minimum accepted length of an OAuth state token.
// Anything shorter does not carry enough entropy to rule out guessing.
const MinStateLength = 32

// DefaultStateTTL is how long a registered OAuth state stays valid when
// the deployment does not configure its own TTL.
const DefaultStateTTL = 1800 * time.Second

// OAuthState is the ephemeral CSRF guard for one authorization flow. It
// binds an opaque random token to the user who started the flow, is
// consumed exactly once by the callback, and is useless after its TTL.
type OAuthState struct {
	State     string    // The opaque random token the client echoes back on callback.
	UserID    uuid.UUID // The user who initiated the authorization flow.
	Provider  Provider  // The platform the flow targets.
	CreatedAt time.Time // Timestamp of when the state was registered.
	ExpiresAt time.Time // After this instant the state is indistinguishable from one that never existed.
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents whether a subscription currently delivers
// content into the user's inbox.
type SubscriptionStatus string

const (
	// SubscriptionStatusActive indicates the feed is being delivered.
	SubscriptionStatusActive SubscriptionStatus = "ACTIVE"
	// SubscriptionStatusPaused indicates the user muted this feed on
	// purpose. Pausing survives reconnects; only the user unpauses.
	SubscriptionStatusPaused SubscriptionStatus = "PAUSED"
	// SubscriptionStatusDisconnected indicates the owning provider
	// connection was severed; delivery stops until a reconnect.
	SubscriptionStatusDisconnected SubscriptionStatus = "DISCONNECTED"
)

// String returns the string representation of the SubscriptionStatus.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsValid checks if the SubscriptionStatus is a valid value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusPaused, SubscriptionStatusDisconnected:
		return true
	default:
		return false
	}
}

// Subscription represents a user's subscription to one channel, show or
// newsletter on an external platform. The rows are owned by the feed
// service; this service only flips Status to keep it consistent with the
// owning ProviderConnection: a subscription is never ACTIVE while its
// provider connection is absent or unhealthy.
type Subscription struct {
	ID                uuid.UUID          // The unique ID for this subscription record.
	UserID            uuid.UUID          // The user who owns this subscription.
	Provider          Provider           // The external platform the content comes from.
	ProviderChannelID string             // The channel/show/sender identifier on the provider's side.
	Title             string             // Display title of the channel, show or newsletter.
	Status            SubscriptionStatus // Delivery state, kept consistent with the provider connection.
	CreatedAt         time.Time          // Timestamp of when the subscription was created.
	UpdatedAt         time.Time          // Timestamp of the last modification.
}

// SubscriptionSummary is the client-facing view of a subscription, used by
// the per-provider listing so users can see which feeds a disconnect
// stopped and which a reconnect will resume.
type SubscriptionSummary struct {
	ID                uuid.UUID          `json:"id"`                  // The subscription record ID.
	Provider          Provider           `json:"provider"`            // The external platform.
	ProviderChannelID string             `json:"provider_channel_id"` // The external channel/show/sender identifier.
	Title             string             `json:"title"`               // Display title.
	Status            SubscriptionStatus `json:"status"`              // Current delivery state.
	CreatedAt         int64              `json:"created_at"`          // Creation time as epoch milliseconds.
	UpdatedAt         int64              `json:"updated_at"`          // Last modification as epoch milliseconds.
}

// Summary projects the subscription into its client-facing view.
func (s *Subscription) Summary() *SubscriptionSummary {
	return &SubscriptionSummary{
		ID:                s.ID,
		Provider:          s.Provider,
		ProviderChannelID: s.ProviderChannelID,
		Title:             s.Title,
		Status:            s.Status,
		CreatedAt:         s.CreatedAt.UnixMilli(),
		UpdatedAt:         s.UpdatedAt.UnixMilli(),
	}
}

package service

import (
	"context"
)

// Connection lifecycle event types consumed by downstream collaborators
// (feed poller, creator-dedup backfill). They mirror the connection state
// machine; "reconnected" is distinguished from "connected" so consumers
// can skip full backfills on token rotation.
const (
	EventConnectionConnected    = "connection.connected"
	EventConnectionReconnected  = "connection.reconnected"
	EventConnectionDisconnected = "connection.disconnected"
	EventConnectionExpired      = "connection.expired"
)

// ConnectionEvent is the message published after a connection lifecycle
// transition commits. It never carries token material.
type ConnectionEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	EventType      string `json:"event_type"`           // One of the EventConnection* constants
	UserID         string `json:"user_id"`
	Provider       string `json:"provider"`
	ProviderUserID string `json:"provider_user_id,omitempty"`
	Status         string `json:"status"`                // Connection status after the transition
	OccurredAt     int64  `json:"occurred_at"`           // Epoch milliseconds
	Subscriptions  int64  `json:"subscriptions_changed"` // Rows whose status the cascade flipped
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishConnectionEvent publishes a connection lifecycle event for async processing
	PublishConnectionEvent(ctx context.Context, event *ConnectionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// The rows are created and owned by the feed service; the connection
// lifecycle only flips Status, so there is no soft delete here.
type SubscriptionModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index:idx_subscriptions_user_provider"`
	Provider          string    `gorm:"type:varchar(32);not null;index:idx_subscriptions_user_provider"`
	ProviderChannelID string    `gorm:"type:varchar(255);not null"`
	Title             string    `gorm:"type:varchar(255)"`
	Status            string    `gorm:"type:varchar(16);not null;default:'ACTIVE'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

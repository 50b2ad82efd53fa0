package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderConnectionModel is the GORM-specific struct for the 'provider_connections' table.
// The composite unique index is what makes the upsert safe: two concurrent
// authorizations for the same (user, provider) pair can never leave two rows.
// There is no soft delete: a disconnected connection is a deleted row, and a
// soft-deleted row would keep blocking the unique index.
type ProviderConnectionModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_provider_connections_user_provider"`
	Provider              string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_provider_connections_user_provider"`
	ProviderUserID        string    `gorm:"type:varchar(255);not null"`
	EncryptedAccessToken  string    `gorm:"type:text;not null"`
	EncryptedRefreshToken string    `gorm:"type:text"`
	TokenExpiresAt        time.Time `gorm:"not null;index"`
	Status                string    `gorm:"type:varchar(16);not null;default:'ACTIVE'"`
	ConnectedAt           time.Time
	LastRefreshedAt       time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderConnectionModel) TableName() string {
	return "provider_connections"
}

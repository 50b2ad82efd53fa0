package model

import (
	"time"

	"github.com/google/uuid"
)

// OAuthStateModel is the GORM-specific struct for the 'oauth_states' table.
// The state token itself is the primary key, which gives registration its
// replay rejection and consumption its at-most-once delete for free.
type OAuthStateModel struct {
	State     string    `gorm:"type:varchar(128);primary_key;check:chk_oauth_states_state_length,char_length(state) >= 32"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider  string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (OAuthStateModel) TableName() string {
	return "oauth_states"
}

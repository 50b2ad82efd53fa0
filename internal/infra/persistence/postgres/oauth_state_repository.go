// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"inlet/internal/domain/entity"
	domainerrors "inlet/internal/domain/errors"
	"inlet/internal/domain/repository"
	"inlet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// oauthStateStore implements the repository.OAuthStateStore interface.
// Expiry lives entirely in its WHERE clauses, so a state past its TTL is
// unusable the instant it expires, whether or not the purge has run.
type oauthStateStore struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewOAuthStateStore is the constructor for oauthStateStore. A non-positive
// ttl falls back to the default.
func NewOAuthStateStore(db *gorm.DB, ttl time.Duration) repository.OAuthStateStore {
	if ttl <= 0 {
		ttl = entity.DefaultStateTTL
	}

	return &oauthStateStore{
		db:  db,
		ttl: ttl,
	}
}

// RegisterState persists a new state. The token is the primary key, so a
// replayed registration loses on the unique violation.
func (repo *oauthStateStore) RegisterState(ctx context.Context, state *entity.OAuthState) error {
	now := time.Now()
	state.CreatedAt = now
	state.ExpiresAt = now.Add(repo.ttl)

	stateM := fromOAuthStateDomain(state)

	if err := repo.db.WithContext(ctx).Create(stateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOAuthStateExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("state token too short")
		}

		return errors.Wrap(err, "failed to register oauth state")
	}

	return nil
}

// ConsumeState deletes the state iff it matches the user and has not
// expired. The single conditional DELETE is the whole concurrency story:
// two racing callbacks both issue it, the row can only be deleted once, and
// whichever statement affects zero rows has lost. Unknown, expired,
// consumed and foreign states all land in the same zero-row branch.
func (repo *oauthStateStore) ConsumeState(ctx context.Context, state string, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("state = ? AND user_id = ? AND expires_at > ?", state, userID, time.Now()).
		Delete(&model.OAuthStateModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume oauth state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOAuthStateInvalid
	}

	return nil
}

// PurgeExpiredStates removes states past their TTL. Purely housekeeping;
// ConsumeState never returns an expired state regardless.
func (repo *oauthStateStore) PurgeExpiredStates(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.OAuthStateModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge expired oauth states")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// fromOAuthStateDomain converts a domain OAuthState entity to a GORM OAuthStateModel.
func fromOAuthStateDomain(data *entity.OAuthState) *model.OAuthStateModel {
	if data == nil {
		return nil
	}

	return &model.OAuthStateModel{
		State:     data.State,
		UserID:    data.UserID,
		Provider:  data.Provider.String(),
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

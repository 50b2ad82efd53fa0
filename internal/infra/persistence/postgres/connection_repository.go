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
	"gorm.io/gorm/clause"
)

// connectionRepository implements the repository.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// UpsertConnection inserts the connection or replaces the conflicting row's
// token material in one statement. The ON CONFLICT target is the composite
// unique index on (user_id, provider), so concurrent authorizations for the
// same pair serialize on the index instead of racing into duplicate rows.
// connected_at survives the conflict path: re-authorizing an existing link
// is not a new link.
func (repo *connectionRepository) UpsertConnection(ctx context.Context, conn *entity.ProviderConnection) error {
	now := time.Now()
	connM := fromConnectionDomain(conn)
	connM.ConnectedAt = now
	connM.LastRefreshedAt = now

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"provider_user_id",
				"encrypted_access_token",
				"encrypted_refresh_token",
				"token_expires_at",
				"status",
				"last_refreshed_at",
				"updated_at",
			}),
		}).
		Create(connM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required connection information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert connection")
	}

	// Re-read so the entity reflects what the row actually holds: on the
	// conflict path the original id and connected_at win over our values.
	var persisted model.ProviderConnectionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", conn.UserID, conn.Provider.String()).
		First(&persisted).Error; err != nil {
		return errors.Wrap(err, "failed to reload upserted connection")
	}

	conn.ID = persisted.ID
	conn.ConnectedAt = persisted.ConnectedAt
	conn.LastRefreshedAt = persisted.LastRefreshedAt
	conn.UpdatedAt = persisted.UpdatedAt

	return nil
}

// FindConnectionByUserAndProvider retrieves the connection for one (user, provider) pair.
func (repo *connectionRepository) FindConnectionByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.ProviderConnection, error) {
	var connM model.ProviderConnectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(&connM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection by user and provider")
	}

	return toConnectionDomain(&connM), nil
}

// FindConnectionsByUser retrieves every connection the user holds.
func (repo *connectionRepository) FindConnectionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProviderConnection, error) {
	var connModels []*model.ProviderConnectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("connected_at ASC").
		Find(&connModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find connections by user")
	}

	connections := make([]*entity.ProviderConnection, 0, len(connModels))
	for _, connM := range connModels {
		connections = append(connections, toConnectionDomain(connM))
	}

	return connections, nil
}

// DeleteConnectionByUserAndProvider removes the connection row. The delete
// is hard: a severed link leaves nothing behind.
func (repo *connectionRepository) DeleteConnectionByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Delete(&model.ProviderConnectionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete connection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// UpdateConnectionTokens replaces the token material on an existing
// connection and resets it to ACTIVE. An empty refresh token means the
// provider issued none this time; the stored one is kept, since it is
// usually still the only way to refresh again later.
func (repo *connectionRepository) UpdateConnectionTokens(ctx context.Context, userID uuid.UUID, provider entity.Provider, encryptedAccessToken, encryptedRefreshToken string, tokenExpiresAt time.Time) error {
	updates := map[string]any{
		"encrypted_access_token": encryptedAccessToken,
		"token_expires_at":       tokenExpiresAt,
		"status":                 entity.ConnectionStatusActive.String(),
		"last_refreshed_at":      time.Now(),
	}
	if encryptedRefreshToken != "" {
		updates["encrypted_refresh_token"] = encryptedRefreshToken
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProviderConnectionModel{}).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update connection tokens")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// FindActiveConnectionsExpiredBefore lists ACTIVE connections whose access
// token expired before the cutoff, oldest expiry first.
func (repo *connectionRepository) FindActiveConnectionsExpiredBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entity.ProviderConnection, error) {
	var connModels []*model.ProviderConnectionModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND token_expires_at < ?", entity.ConnectionStatusActive.String(), cutoff).
		Order("token_expires_at ASC").
		Limit(limit).
		Find(&connModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired active connections")
	}

	connections := make([]*entity.ProviderConnection, 0, len(connModels))
	for _, connM := range connModels {
		connections = append(connections, toConnectionDomain(connM))
	}

	return connections, nil
}

// MarkConnectionExpired flips a single ACTIVE connection to EXPIRED. The
// status guard makes the sweep idempotent: a row already refreshed,
// disconnected or expired by a concurrent run affects zero rows.
func (repo *connectionRepository) MarkConnectionExpired(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProviderConnectionModel{}).
		Where("id = ? AND status = ?", id, entity.ConnectionStatusActive.String()).
		Update("status", entity.ConnectionStatusExpired.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark connection expired")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM ProviderConnectionModel to a domain ProviderConnection entity.
func toConnectionDomain(data *model.ProviderConnectionModel) *entity.ProviderConnection {
	if data == nil {
		return nil
	}

	return &entity.ProviderConnection{
		ID:                    data.ID,
		UserID:                data.UserID,
		Provider:              entity.Provider(data.Provider),
		ProviderUserID:        data.ProviderUserID,
		EncryptedAccessToken:  data.EncryptedAccessToken,
		EncryptedRefreshToken: data.EncryptedRefreshToken,
		TokenExpiresAt:        data.TokenExpiresAt,
		Status:                entity.ConnectionStatus(data.Status),
		ConnectedAt:           data.ConnectedAt,
		LastRefreshedAt:       data.LastRefreshedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromConnectionDomain converts a domain ProviderConnection entity to a GORM ProviderConnectionModel.
func fromConnectionDomain(data *entity.ProviderConnection) *model.ProviderConnectionModel {
	if data == nil {
		return nil
	}

	return &model.ProviderConnectionModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		Provider:              data.Provider.String(),
		ProviderUserID:        data.ProviderUserID,
		EncryptedAccessToken:  data.EncryptedAccessToken,
		EncryptedRefreshToken: data.EncryptedRefreshToken,
		TokenExpiresAt:        data.TokenExpiresAt,
		Status:                data.Status.String(),
		ConnectedAt:           data.ConnectedAt,
		LastRefreshedAt:       data.LastRefreshedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

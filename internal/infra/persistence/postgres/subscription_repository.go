// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"inlet/internal/domain/entity"
	domainerrors "inlet/internal/domain/errors"
	"inlet/internal/domain/repository"
	"inlet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a new subscription row.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindSubscriptionsByUserAndProvider retrieves every subscription the user
// holds on one platform, regardless of status.
func (repo *subscriptionRepository) FindSubscriptionsByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user and provider")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// DisconnectSubscriptions marks every subscription for (user, provider) as
// DISCONNECTED, PAUSED ones included. Zero affected rows is a valid
// outcome: the user may hold a connection with no subscriptions yet.
func (repo *subscriptionRepository) DisconnectSubscriptions(ctx context.Context, userID uuid.UUID, provider entity.Provider) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Update("status", entity.SubscriptionStatusDisconnected.String())

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to disconnect subscriptions")
	}

	return result.RowsAffected, nil
}

// DisconnectActiveSubscriptions marks only ACTIVE subscriptions as
// DISCONNECTED. PAUSED rows stay PAUSED: expiry is not a user decision and
// must not erase one.
func (repo *subscriptionRepository) DisconnectActiveSubscriptions(ctx context.Context, userID uuid.UUID, provider entity.Provider) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ? AND provider = ? AND status = ?", userID, provider.String(), entity.SubscriptionStatusActive.String()).
		Update("status", entity.SubscriptionStatusDisconnected.String())

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to disconnect active subscriptions")
	}

	return result.RowsAffected, nil
}

// ReactivateDisconnectedSubscriptions returns DISCONNECTED subscriptions to
// ACTIVE. The status guard is what keeps PAUSED rows paused across a
// reconnect.
func (repo *subscriptionRepository) ReactivateDisconnectedSubscriptions(ctx context.Context, userID uuid.UUID, provider entity.Provider) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ? AND provider = ? AND status = ?", userID, provider.String(), entity.SubscriptionStatusDisconnected.String()).
		Update("status", entity.SubscriptionStatusActive.String())

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reactivate disconnected subscriptions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:                data.ID,
		UserID:            data.UserID,
		Provider:          entity.Provider(data.Provider),
		ProviderChannelID: data.ProviderChannelID,
		Title:             data.Title,
		Status:            entity.SubscriptionStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Provider:          data.Provider.String(),
		ProviderChannelID: data.ProviderChannelID,
		Title:             data.Title,
		Status:            data.Status.String(),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

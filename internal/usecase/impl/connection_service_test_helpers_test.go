package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"inlet/internal/domain/entity"
	"inlet/internal/domain/service"
	mockRepo "inlet/internal/mocks/repository"
	mockSvc "inlet/internal/mocks/service"
	"inlet/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// connectionServiceFixtures holds all test dependencies for connection service tests.
type connectionServiceFixtures struct {
	service          usecase.ConnectionUsecase
	txManager        *mockRepo.MockTransactionManager
	connectionRepo   *mockRepo.MockConnectionRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	stateStore       *mockRepo.MockOAuthStateStore
	cipher           *mockSvc.MockTokenCipher
	adapter          *mockSvc.MockProviderAdapter
	qrcodeService    *mockSvc.MockQRCodeService
	eventPublisher   *mockSvc.MockEventPublisher
}

// createTestConnectionService wires a fully configured service with a
// single adapter registered for YouTube.
func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	stateStore := mockRepo.NewMockOAuthStateStore(t)
	cipher := mockSvc.NewMockTokenCipher(t)
	adapter := mockSvc.NewMockProviderAdapter(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	connectionService := NewConnectionService(ConnectionServiceParams{
		TxManager:        txManager,
		ConnectionRepo:   connectionRepo,
		SubscriptionRepo: subscriptionRepo,
		StateStore:       stateStore,
		Cipher:           cipher,
		Adapters:         map[entity.Provider]service.ProviderAdapter{entity.ProviderYouTube: adapter},
		QRCodeService:    qrcodeService,
		EventPublisher:   eventPublisher,
		Logger:           newDiscardLogger(),
	})

	return connectionServiceFixtures{
		service:          connectionService,
		txManager:        txManager,
		connectionRepo:   connectionRepo,
		subscriptionRepo: subscriptionRepo,
		stateStore:       stateStore,
		cipher:           cipher,
		adapter:          adapter,
		qrcodeService:    qrcodeService,
		eventPublisher:   eventPublisher,
	}
}

func newActiveConnection(userID uuid.UUID, provider entity.Provider) *entity.ProviderConnection {
	now := time.Now()

	return &entity.ProviderConnection{
		ID:                    uuid.New(),
		UserID:                userID,
		Provider:              provider,
		ProviderUserID:        "external-account-id",
		EncryptedAccessToken:  "sealed-access",
		EncryptedRefreshToken: "sealed-refresh",
		TokenExpiresAt:        now.Add(time.Hour),
		Status:                entity.ConnectionStatusActive,
		ConnectedAt:           now.Add(-24 * time.Hour),
		LastRefreshedAt:       now,
		UpdatedAt:             now,
	}
}

// validState returns a state token that clears the minimum-length check.
func validState() string {
	return "0123456789abcdef0123456789abcdef"
}

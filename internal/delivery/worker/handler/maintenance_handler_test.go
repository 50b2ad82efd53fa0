package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inlet/config"
	"inlet/internal/domain/constants"
	"inlet/internal/domain/entity"
	"inlet/internal/domain/repository"
	"inlet/internal/domain/service"
	mockRepo "inlet/internal/mocks/repository"
	mockSvc "inlet/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type maintenanceFixtures struct {
	handler        *MaintenanceHandler
	txManager      *mockRepo.MockTransactionManager
	connectionRepo *mockRepo.MockConnectionRepository
	stateStore     *mockRepo.MockOAuthStateStore
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestMaintenanceHandler(t *testing.T) maintenanceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	stateStore := mockRepo.NewMockOAuthStateStore(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	maintenanceHandler := NewMaintenanceHandler(MaintenanceHandlerParams{
		Config:         &config.Config{},
		Logger:         newDiscardLogger(),
		TxManager:      txManager,
		ConnectionRepo: connectionRepo,
		StateStore:     stateStore,
		EventPublisher: eventPublisher,
	})

	return maintenanceFixtures{
		handler:        maintenanceHandler,
		txManager:      txManager,
		connectionRepo: connectionRepo,
		stateStore:     stateStore,
		eventPublisher: eventPublisher,
	}
}

// pushBody wraps a maintenance task the way a Pub/Sub push delivery does:
// JSON payload, base64-encoded, inside the push envelope.
func pushBody(t *testing.T, task MaintenanceTask, attributes map[string]string) string {
	t.Helper()

	payload, err := json.Marshal(task)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.Attributes = attributes
	pushMsg.Message.MessageID = "message-1"
	pushMsg.Subscription = "projects/test/subscriptions/maintenance"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return string(body)
}

func performPush(t *testing.T, maintenanceHandler *MaintenanceHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, maintenanceHandler.HandlePush(c))

	return rec
}

func newOverdueConnection() *entity.ProviderConnection {
	now := time.Now()

	return &entity.ProviderConnection{
		ID:                    uuid.New(),
		UserID:                uuid.New(),
		Provider:              entity.ProviderYouTube,
		ProviderUserID:        "external-account-id",
		EncryptedAccessToken:  "sealed-access",
		EncryptedRefreshToken: "sealed-refresh",
		TokenExpiresAt:        now.Add(-time.Hour),
		Status:                entity.ConnectionStatusActive,
		ConnectedAt:           now.Add(-24 * time.Hour),
		LastRefreshedAt:       now.Add(-2 * time.Hour),
		UpdatedAt:             now.Add(-2 * time.Hour),
	}
}

// expectExpireTransaction stubs the per-connection transaction: mark the
// row EXPIRED, cascade the ACTIVE subscriptions.
func expectExpireTransaction(t *testing.T, fixtures maintenanceFixtures, markErr error, disconnected int64) {
	fixtures.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)

			mockConnRepo.EXPECT().
				MarkConnectionExpired(mock.Anything, mock.AnythingOfType("uuid.UUID")).
				Return(markErr)

			if markErr == nil {
				mockSubRepo.EXPECT().
					DisconnectActiveSubscriptions(mock.Anything, mock.AnythingOfType("uuid.UUID"), entity.ProviderYouTube).
					Return(disconnected, nil)
			}

			return fn(mockFactory)
		})
}

func TestMaintenanceHandler_HandlePush_ExpirySweep(t *testing.T) {
	fixtures := createTestMaintenanceHandler(t)
	conn := newOverdueConnection()

	fixtures.connectionRepo.EXPECT().
		FindActiveConnectionsExpiredBefore(mock.Anything, mock.AnythingOfType("time.Time"), sweepBatchSize).
		Return([]*entity.ProviderConnection{conn}, nil).
		Once()

	expectExpireTransaction(t, fixtures, nil, 2)

	fixtures.stateStore.EXPECT().
		PurgeExpiredStates(mock.Anything).
		Return(int64(3), nil)

	var published *service.ConnectionEvent
	fixtures.eventPublisher.EXPECT().
		PublishConnectionEvent(mock.Anything, mock.AnythingOfType("*service.ConnectionEvent")).
		Run(func(_ context.Context, event *service.ConnectionEvent) {
			published = event
		}).
		Return(nil)

	body := pushBody(t, MaintenanceTask{Task: TaskExpirySweep}, map[string]string{"request_id": "req-123"})
	rec := performPush(t, fixtures.handler, body)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, published)
	assert.Equal(t, service.EventConnectionExpired, published.EventType)
	assert.Equal(t, "req-123", published.RequestID)
	assert.Equal(t, conn.UserID.String(), published.UserID)
	assert.Equal(t, entity.ProviderYouTube.String(), published.Provider)
	assert.Equal(t, entity.ConnectionStatusExpired.String(), published.Status)
	assert.Equal(t, int64(2), published.Subscriptions)
}

func TestMaintenanceHandler_HandlePush_SweepDrainsFullBatches(t *testing.T) {
	fixtures := createTestMaintenanceHandler(t)

	batch := make([]*entity.ProviderConnection, sweepBatchSize)
	for i := range batch {
		batch[i] = newOverdueConnection()
	}

	// A full first batch forces a second fetch; the empty second batch
	// ends the sweep.
	fixtures.connectionRepo.EXPECT().
		FindActiveConnectionsExpiredBefore(mock.Anything, mock.AnythingOfType("time.Time"), sweepBatchSize).
		Return(batch, nil).
		Once()
	fixtures.connectionRepo.EXPECT().
		FindActiveConnectionsExpiredBefore(mock.Anything, mock.AnythingOfType("time.Time"), sweepBatchSize).
		Return(nil, nil).
		Once()

	expectExpireTransaction(t, fixtures, nil, 0)

	fixtures.stateStore.EXPECT().
		PurgeExpiredStates(mock.Anything).
		Return(int64(0), nil)

	publishedCount := 0
	fixtures.eventPublisher.EXPECT().
		PublishConnectionEvent(mock.Anything, mock.AnythingOfType("*service.ConnectionEvent")).
		Run(func(_ context.Context, _ *service.ConnectionEvent) {
			publishedCount++
		}).
		Return(nil)

	body := pushBody(t, MaintenanceTask{Task: TaskExpirySweep}, nil)
	rec := performPush(t, fixtures.handler, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sweepBatchSize, publishedCount)
}

func TestMaintenanceHandler_HandlePush_SkipsConcurrentlyMovedRows(t *testing.T) {
	fixtures := createTestMaintenanceHandler(t)
	conn := newOverdueConnection()

	fixtures.connectionRepo.EXPECT().
		FindActiveConnectionsExpiredBefore(mock.Anything, mock.AnythingOfType("time.Time"), sweepBatchSize).
		Return([]*entity.ProviderConnection{conn}, nil).
		Once()

	// The row was refreshed or disconnected between fetch and expire; the
	// sweep must not publish an expiry event for it.
	expectExpireTransaction(t, fixtures, repository.ErrConnectionNotFound, 0)

	fixtures.stateStore.EXPECT().
		PurgeExpiredStates(mock.Anything).
		Return(int64(0), nil)

	body := pushBody(t, MaintenanceTask{Task: TaskExpirySweep}, nil)
	rec := performPush(t, fixtures.handler, body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMaintenanceHandler_HandlePush_FetchFailureIsRetryable(t *testing.T) {
	fixtures := createTestMaintenanceHandler(t)

	fixtures.connectionRepo.EXPECT().
		FindActiveConnectionsExpiredBefore(mock.Anything, mock.AnythingOfType("time.Time"), sweepBatchSize).
		Return(nil, errors.New("connection pool exhausted"))

	body := pushBody(t, MaintenanceTask{Task: TaskExpirySweep}, nil)
	rec := performPush(t, fixtures.handler, body)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMaintenanceHandler_HandlePush_FailedExpirationsAreRetryable(t *testing.T) {
	fixtures := createTestMaintenanceHandler(t)
	conn := newOverdueConnection()

	fixtures.connectionRepo.EXPECT().
		FindActiveConnectionsExpiredBefore(mock.Anything, mock.AnythingOfType("time.Time"), sweepBatchSize).
		Return([]*entity.ProviderConnection{conn}, nil).
		Once()

	fixtures.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	fixtures.stateStore.EXPECT().
		PurgeExpiredStates(mock.Anything).
		Return(int64(0), nil)

	body := pushBody(t, MaintenanceTask{Task: TaskExpirySweep}, nil)
	rec := performPush(t, fixtures.handler, body)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMaintenanceHandler_HandlePush_UnknownTaskIsDropped(t *testing.T) {
	fixtures := createTestMaintenanceHandler(t)

	body := pushBody(t, MaintenanceTask{Task: "defragment"}, nil)
	rec := performPush(t, fixtures.handler, body)

	// Redelivery cannot fix an unknown task, so it must be acked.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMaintenanceHandler_HandlePush_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON envelope", body: "{not json"},
		{name: "invalid base64 data", body: `{"message":{"data":"!!not-base64!!"}}`},
		{name: "data is not a task", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("plain text")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestMaintenanceHandler(t)

			rec := performPush(t, fixtures.handler, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMaintenanceHandler_HandlePush_RejectsUnauthenticatedPush(t *testing.T) {
	maintenanceHandler := &MaintenanceHandler{
		verifyPushAuth: true,
		logger:         newDiscardLogger(),
	}

	body := pushBody(t, MaintenanceTask{Task: TaskExpirySweep}, nil)
	rec := performPush(t, maintenanceHandler, body)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewMaintenanceHandler_PushAuthPolicy(t *testing.T) {
	tests := []struct {
		name       string
		pubsub     *config.PubSubConfig
		env        string
		wantVerify bool
	}{
		{name: "no pubsub configured", pubsub: nil, env: "production", wantVerify: false},
		{
			name:       "google provider in production",
			pubsub:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
			env:        "production",
			wantVerify: true,
		},
		{
			name:       "google provider in develop",
			pubsub:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
			env:        constants.EnvDevelop,
			wantVerify: false,
		},
		{
			name:       "local provider in production",
			pubsub:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			env:        "production",
			wantVerify: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub}
			cfg.Env.Env = tt.env

			maintenanceHandler := NewMaintenanceHandler(MaintenanceHandlerParams{
				Config:         cfg,
				Logger:         newDiscardLogger(),
				TxManager:      mockRepo.NewMockTransactionManager(t),
				ConnectionRepo: mockRepo.NewMockConnectionRepository(t),
				StateStore:     mockRepo.NewMockOAuthStateStore(t),
				EventPublisher: mockSvc.NewMockEventPublisher(t),
			})

			assert.Equal(t, tt.wantVerify, maintenanceHandler.verifyPushAuth)
		})
	}
}

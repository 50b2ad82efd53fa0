package impl

import (
	"context"
	"testing"
	"time"

	"inlet/internal/domain/entity"
	"inlet/internal/domain/repository"
	"inlet/internal/domain/service"
	mockRepo "inlet/internal/mocks/repository"
	"inlet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConnectionService_RegisterState_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	state := validState()

	var registered *entity.OAuthState
	fx.stateStore.EXPECT().
		RegisterState(ctx, mock.AnythingOfType("*entity.OAuthState")).
		Run(func(ctx context.Context, state *entity.OAuthState) {
			registered = state
		}).
		Return(nil)

	err := fx.service.RegisterState(ctx, userID, entity.ProviderYouTube, state)

	require.NoError(t, err)
	require.NotNil(t, registered)
	assert.Equal(t, state, registered.State)
	assert.Equal(t, userID, registered.UserID)
	assert.Equal(t, entity.ProviderYouTube, registered.Provider)
}

func TestConnectionService_Callback_NewConnection(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.CallbackInput{
		Provider:     entity.ProviderYouTube,
		Code:         "auth-code",
		State:        validState(),
		CodeVerifier: "pkce-verifier",
	}

	fx.stateStore.EXPECT().
		ConsumeState(ctx, input.State, userID).
		Return(nil)

	fx.adapter.EXPECT().
		ExchangeCode(ctx, input.Code, input.CodeVerifier).
		Return(&service.TokenGrant{
			AccessToken:  "plain-access",
			RefreshToken: "plain-refresh",
			ExpiresIn:    3600,
		}, nil)

	fx.adapter.EXPECT().
		FetchIdentity(ctx, "plain-access").
		Return(&service.ProviderIdentity{
			ProviderUserID: "UC-channel-id",
			DisplayName:    "Some Channel",
		}, nil)

	fx.cipher.EXPECT().Encrypt(ctx, "plain-access").Return("sealed-access", nil)
	fx.cipher.EXPECT().Encrypt(ctx, "plain-refresh").Return("sealed-refresh", nil)

	var upserted *entity.ProviderConnection
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)

			mockConnRepo.EXPECT().
				FindConnectionByUserAndProvider(ctx, userID, entity.ProviderYouTube).
				Return(nil, repository.ErrConnectionNotFound)

			mockConnRepo.EXPECT().
				UpsertConnection(ctx, mock.AnythingOfType("*entity.ProviderConnection")).
				Run(func(ctx context.Context, conn *entity.ProviderConnection) {
					upserted = conn
				}).
				Return(nil)

			mockSubRepo.EXPECT().
				ReactivateDisconnectedSubscriptions(ctx, userID, entity.ProviderYouTube).
				Return(int64(0), nil)

			return fn(mockFactory)
		})

	var published *service.ConnectionEvent
	fx.eventPublisher.EXPECT().
		PublishConnectionEvent(ctx, mock.AnythingOfType("*service.ConnectionEvent")).
		Run(func(ctx context.Context, event *service.ConnectionEvent) {
			published = event
		}).
		Return(nil)

	summary, err := fx.service.Callback(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, entity.ProviderYouTube, summary.Provider)
	assert.Equal(t, "UC-channel-id", summary.ProviderUserID)
	assert.Equal(t, entity.ConnectionStatusActive, summary.Status)

	require.NotNil(t, upserted)
	assert.Equal(t, userID, upserted.UserID)
	assert.Equal(t, "sealed-access", upserted.EncryptedAccessToken)
	assert.Equal(t, "sealed-refresh", upserted.EncryptedRefreshToken)
	assert.WithinDuration(t, time.Now().Add(3600*time.Second), upserted.TokenExpiresAt, 5*time.Second)

	require.NotNil(t, published)
	assert.Equal(t, service.EventConnectionConnected, published.EventType)
	assert.Equal(t, userID.String(), published.UserID)
	assert.Equal(t, entity.ConnectionStatusActive.String(), published.Status)
	assert.Equal(t, int64(0), published.Subscriptions)
}

func TestConnectionService_Callback_ReconnectReactivatesSubscriptions(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.CallbackInput{
		Provider: entity.ProviderYouTube,
		Code:     "auth-code",
		State:    validState(),
	}

	fx.stateStore.EXPECT().ConsumeState(ctx, input.State, userID).Return(nil)
	fx.adapter.EXPECT().
		ExchangeCode(ctx, input.Code, "").
		Return(&service.TokenGrant{AccessToken: "plain-access", ExpiresIn: 3600}, nil)
	fx.adapter.EXPECT().
		FetchIdentity(ctx, "plain-access").
		Return(&service.ProviderIdentity{ProviderUserID: "UC-channel-id"}, nil)
	fx.cipher.EXPECT().Encrypt(ctx, "plain-access").Return("sealed-access", nil)

	existing := newActiveConnection(userID, entity.ProviderYouTube)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)

			mockConnRepo.EXPECT().
				FindConnectionByUserAndProvider(ctx, userID, entity.ProviderYouTube).
				Return(existing, nil)

			mockConnRepo.EXPECT().
				UpsertConnection(ctx, mock.AnythingOfType("*entity.ProviderConnection")).
				Return(nil)

			mockSubRepo.EXPECT().
				ReactivateDisconnectedSubscriptions(ctx, userID, entity.ProviderYouTube).
				Return(int64(2), nil)

			return fn(mockFactory)
		})

	var published *service.ConnectionEvent
	fx.eventPublisher.EXPECT().
		PublishConnectionEvent(ctx, mock.AnythingOfType("*service.ConnectionEvent")).
		Run(func(ctx context.Context, event *service.ConnectionEvent) {
			published = event
		}).
		Return(nil)

	summary, err := fx.service.Callback(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, summary)
	require.NotNil(t, published)
	assert.Equal(t, service.EventConnectionReconnected, published.EventType)
	assert.Equal(t, int64(2), published.Subscriptions)
}

func TestConnectionService_Callback_NoRefreshTokenIssued(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.CallbackInput{
		Provider: entity.ProviderYouTube,
		Code:     "auth-code",
		State:    validState(),
	}

	fx.stateStore.EXPECT().ConsumeState(ctx, input.State, userID).Return(nil)
	fx.adapter.EXPECT().
		ExchangeCode(ctx, input.Code, "").
		Return(&service.TokenGrant{AccessToken: "plain-access", ExpiresIn: 900}, nil)
	fx.adapter.EXPECT().
		FetchIdentity(ctx, "plain-access").
		Return(&service.ProviderIdentity{ProviderUserID: "UC-channel-id"}, nil)

	// Only the access token goes through the cipher.
	fx.cipher.EXPECT().Encrypt(ctx, "plain-access").Return("sealed-access", nil)

	var upserted *entity.ProviderConnection
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)

			mockConnRepo.EXPECT().
				FindConnectionByUserAndProvider(ctx, userID, entity.ProviderYouTube).
				Return(nil, repository.ErrConnectionNotFound)

			mockConnRepo.EXPECT().
				UpsertConnection(ctx, mock.AnythingOfType("*entity.ProviderConnection")).
				Run(func(ctx context.Context, conn *entity.ProviderConnection) {
					upserted = conn
				}).
				Return(nil)

			mockSubRepo.EXPECT().
				ReactivateDisconnectedSubscriptions(ctx, userID, entity.ProviderYouTube).
				Return(int64(0), nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishConnectionEvent(ctx, mock.AnythingOfType("*service.ConnectionEvent")).
		Return(nil)

	_, err := fx.service.Callback(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Empty(t, upserted.EncryptedRefreshToken)
}

func TestConnectionService_ListConnections(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	conn := newActiveConnection(userID, entity.ProviderYouTube)

	fx.connectionRepo.EXPECT().
		FindConnectionsByUser(ctx, userID).
		Return([]*entity.ProviderConnection{conn}, nil)

	result, err := fx.service.ListConnections(ctx, userID)

	require.NoError(t, err)
	require.Len(t, result, len(entity.KnownProviders()))

	youtube := result[entity.ProviderYouTube]
	require.NotNil(t, youtube)
	assert.Equal(t, conn.ProviderUserID, youtube.ProviderUserID)
	assert.Equal(t, entity.ConnectionStatusActive, youtube.Status)
	assert.Equal(t, conn.TokenExpiresAt.UnixMilli(), youtube.TokenExpiresAt)

	assert.Nil(t, result[entity.ProviderSpotify])
	assert.Nil(t, result[entity.ProviderGmail])
}

func TestConnectionService_ListSubscriptions(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	subscriptions := []*entity.Subscription{
		{
			ID:                uuid.New(),
			UserID:            userID,
			Provider:          entity.ProviderYouTube,
			ProviderChannelID: "UC_channel",
			Title:             "Some Channel",
			Status:            entity.SubscriptionStatusActive,
			CreatedAt:         now.Add(-48 * time.Hour),
			UpdatedAt:         now,
		},
		{
			ID:                uuid.New(),
			UserID:            userID,
			Provider:          entity.ProviderYouTube,
			ProviderChannelID: "UC_muted",
			Title:             "Muted Channel",
			Status:            entity.SubscriptionStatusPaused,
			CreatedAt:         now.Add(-72 * time.Hour),
			UpdatedAt:         now,
		},
	}

	fx.subscriptionRepo.EXPECT().
		FindSubscriptionsByUserAndProvider(ctx, userID, entity.ProviderYouTube).
		Return(subscriptions, nil)

	result, err := fx.service.ListSubscriptions(ctx, userID, entity.ProviderYouTube)

	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, subscriptions[0].ID, result[0].ID)
	assert.Equal(t, entity.ProviderYouTube, result[0].Provider)
	assert.Equal(t, "UC_channel", result[0].ProviderChannelID)
	assert.Equal(t, "Some Channel", result[0].Title)
	assert.Equal(t, entity.SubscriptionStatusActive, result[0].Status)
	assert.Equal(t, subscriptions[0].CreatedAt.UnixMilli(), result[0].CreatedAt)

	assert.Equal(t, entity.SubscriptionStatusPaused, result[1].Status)
}

func TestConnectionService_ListSubscriptions_Empty(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindSubscriptionsByUserAndProvider(ctx, userID, entity.ProviderGmail).
		Return(nil, nil)

	result, err := fx.service.ListSubscriptions(ctx, userID, entity.ProviderGmail)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestConnectionService_Disconnect_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := newActiveConnection(userID, entity.ProviderYouTube)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)

			mockConnRepo.EXPECT().
				FindConnectionByUserAndProvider(ctx, userID, entity.ProviderYouTube).
				Return(existing, nil)

			mockConnRepo.EXPECT().
				DeleteConnectionByUserAndProvider(ctx, userID, entity.ProviderYouTube).
				Return(nil)

			// The cascade covers PAUSED rows too, so the count can exceed
			// what an expiry sweep would have touched.
			mockSubRepo.EXPECT().
				DisconnectSubscriptions(ctx, userID, entity.ProviderYouTube).
				Return(int64(3), nil)

			return fn(mockFactory)
		})

	var published *service.ConnectionEvent
	fx.eventPublisher.EXPECT().
		PublishConnectionEvent(ctx, mock.AnythingOfType("*service.ConnectionEvent")).
		Run(func(ctx context.Context, event *service.ConnectionEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.Disconnect(ctx, userID, entity.ProviderYouTube)

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.EventConnectionDisconnected, published.EventType)
	assert.Equal(t, entity.ConnectionStatusDisconnected.String(), published.Status)
	assert.Equal(t, int64(3), published.Subscriptions)
}

func TestConnectionService_StoreRefreshedTokens_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.RefreshedTokensInput{
		Provider:     entity.ProviderYouTube,
		AccessToken:  "rotated-access",
		RefreshToken: "rotated-refresh",
		ExpiresIn:    3600,
	}

	fx.cipher.EXPECT().Encrypt(ctx, "rotated-access").Return("sealed-access-2", nil)
	fx.cipher.EXPECT().Encrypt(ctx, "rotated-refresh").Return("sealed-refresh-2", nil)

	existing := newActiveConnection(userID, entity.ProviderYouTube)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)

			mockConnRepo.EXPECT().
				FindConnectionByUserAndProvider(ctx, userID, entity.ProviderYouTube).
				Return(existing, nil)

			mockConnRepo.EXPECT().
				UpdateConnectionTokens(ctx, userID, entity.ProviderYouTube, "sealed-access-2", "sealed-refresh-2", mock.AnythingOfType("time.Time")).
				Return(nil)

			mockSubRepo.EXPECT().
				ReactivateDisconnectedSubscriptions(ctx, userID, entity.ProviderYouTube).
				Return(int64(0), nil)

			return fn(mockFactory)
		})

	// A routine refresh of a healthy connection publishes nothing.
	err := fx.service.StoreRefreshedTokens(ctx, userID, input)

	require.NoError(t, err)
}

func TestConnectionService_StoreRefreshedTokens_ExpiredConnectionReactivates(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.RefreshedTokensInput{
		Provider:    entity.ProviderYouTube,
		AccessToken: "rotated-access",
		ExpiresIn:   3600,
	}

	fx.cipher.EXPECT().Encrypt(ctx, "rotated-access").Return("sealed-access-2", nil)

	existing := newActiveConnection(userID, entity.ProviderYouTube)
	existing.Status = entity.ConnectionStatusExpired

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)

			mockConnRepo.EXPECT().
				FindConnectionByUserAndProvider(ctx, userID, entity.ProviderYouTube).
				Return(existing, nil)

			// The stored refresh token survives when the refresh response
			// carried none.
			mockConnRepo.EXPECT().
				UpdateConnectionTokens(ctx, userID, entity.ProviderYouTube, "sealed-access-2", "", mock.AnythingOfType("time.Time")).
				Return(nil)

			mockSubRepo.EXPECT().
				ReactivateDisconnectedSubscriptions(ctx, userID, entity.ProviderYouTube).
				Return(int64(2), nil)

			return fn(mockFactory)
		})

	var published *service.ConnectionEvent
	fx.eventPublisher.EXPECT().
		PublishConnectionEvent(ctx, mock.AnythingOfType("*service.ConnectionEvent")).
		Run(func(ctx context.Context, event *service.ConnectionEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.StoreRefreshedTokens(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.EventConnectionReconnected, published.EventType)
	assert.Equal(t, entity.ConnectionStatusActive.String(), published.Status)
	assert.Equal(t, int64(2), published.Subscriptions)
}

func TestConnectionService_ConnectLink_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	var registered *entity.OAuthState
	fx.stateStore.EXPECT().
		RegisterState(ctx, mock.AnythingOfType("*entity.OAuthState")).
		Run(func(ctx context.Context, state *entity.OAuthState) {
			registered = state
		}).
		Return(nil)

	var urlState string
	fx.adapter.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string")).
		Run(func(state string) {
			urlState = state
		}).
		Return("https://accounts.google.com/o/oauth2/v2/auth?client_id=abc")

	output, err := fx.service.ConnectLink(ctx, userID, entity.ProviderYouTube)

	require.NoError(t, err)
	require.NotNil(t, output)
	require.NotNil(t, registered)

	// The generated state is 32 random bytes hex-encoded, bound to the
	// caller, and the same token the consent URL carries.
	assert.Len(t, output.State, 64)
	assert.Equal(t, registered.State, output.State)
	assert.Equal(t, registered.State, urlState)
	assert.Equal(t, userID, registered.UserID)
	assert.Equal(t, entity.ProviderYouTube, registered.Provider)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?client_id=abc", output.URL)
}

func TestConnectionService_ConnectLinkQR_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.stateStore.EXPECT().
		RegisterState(ctx, mock.AnythingOfType("*entity.OAuthState")).
		Return(nil)

	authURL := "https://accounts.google.com/o/oauth2/v2/auth?client_id=abc"
	fx.adapter.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string")).
		Return(authURL)

	fx.qrcodeService.EXPECT().
		GenerateLinkQR(authURL).
		Return(pngBytes, nil)

	qrCode, err := fx.service.ConnectLinkQR(ctx, userID, entity.ProviderYouTube)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, qrCode)
}

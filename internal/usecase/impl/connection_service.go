// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "inlet/internal/delivery/context"
	"inlet/internal/domain/entity"
	domainerrors "inlet/internal/domain/errors"
	"inlet/internal/domain/repository"
	"inlet/internal/domain/service"
	"inlet/internal/usecase"
	"inlet/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// connectionService implements the ConnectionUsecase interface. It owns
// the orchestration of the authorization flow: CSRF state, code
// exchange, credential encryption and the connection ledger, including
// the subscription-status cascades.
type connectionService struct {
	txManager        repository.TransactionManager
	connectionRepo   repository.ConnectionRepository
	subscriptionRepo repository.SubscriptionRepository
	stateStore       repository.OAuthStateStore
	cipher           service.TokenCipher
	adapters         map[entity.Provider]service.ProviderAdapter
	qrcodeService    service.QRCodeService
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// ConnectionServiceParams holds dependencies for the connection service, injected by Fx.
// StateStore and Cipher stay optional on purpose: their absence is a
// deployment error the service reports per request, not a crash at boot.
type ConnectionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ConnectionRepo   repository.ConnectionRepository
	SubscriptionRepo repository.SubscriptionRepository
	StateStore       repository.OAuthStateStore `optional:"true"`
	Cipher           service.TokenCipher        `optional:"true"`
	Adapters         map[entity.Provider]service.ProviderAdapter
	QRCodeService    service.QRCodeService
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewConnectionService is the constructor for connectionService. It receives all dependencies as interfaces.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		txManager:        params.TxManager,
		connectionRepo:   params.ConnectionRepo,
		subscriptionRepo: params.SubscriptionRepo,
		stateStore:       params.StateStore,
		cipher:           params.Cipher,
		adapters:         params.Adapters,
		qrcodeService:    params.QRCodeService,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireStateStore rejects before any external call when the state
// store was never configured. Its message is distinct from the cipher
// precondition so operators can tell the two misconfigurations apart.
func (srv *connectionService) requireStateStore() error {
	if srv.stateStore == nil {
		return errors.Wrap(domainerrors.ErrStateStoreNotConfigured, "oauth state store is not configured")
	}

	return nil
}

// requireCipher rejects before any external call when the credential
// cipher was never configured.
func (srv *connectionService) requireCipher() error {
	if srv.cipher == nil {
		return errors.Wrap(domainerrors.ErrVaultNotConfigured, "credential cipher is not configured")
	}

	return nil
}

// adapterFor resolves the configured adapter for a provider. An invalid
// provider is a client error; a known provider without an adapter is a
// deployment gap.
func (srv *connectionService) adapterFor(provider entity.Provider) (service.ProviderAdapter, error) {
	if !provider.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrProviderNotSupported, "unknown provider")
	}

	adapter, ok := srv.adapters[provider]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInternalError, "no adapter configured for provider %s", provider)
	}

	return adapter, nil
}

// RegisterState stores a client-generated CSRF state bound to the authenticated user.
func (srv *connectionService) RegisterState(ctx context.Context, userID uuid.UUID, provider entity.Provider, state string) error {
	if !provider.IsValid() {
		return errors.Wrap(domainerrors.ErrProviderNotSupported, "unknown provider")
	}
	if err := srv.requireStateStore(); err != nil {
		return err
	}
	if len(state) < entity.MinStateLength {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "state token must be at least %d characters", entity.MinStateLength)
	}

	record := &entity.OAuthState{
		State:    state,
		UserID:   userID,
		Provider: provider,
	}

	if err := srv.stateStore.RegisterState(ctx, record); err != nil {
		if errors.Is(err, repository.ErrOAuthStateExists) {
			srv.log(ctx).Warn("Rejected replayed oauth state", slog.Any("userID", userID), slog.String("provider", provider.String()))

			return errors.Wrap(domainerrors.ErrOAuthStateConflict, "state token already registered")
		}

		return errors.Wrap(err, "failed to register oauth state")
	}

	srv.log(ctx).Debug("Registered oauth state", slog.Any("userID", userID), slog.String("provider", provider.String()))

	return nil
}

// Callback completes the authorization flow. The state is consumed
// before the code exchange, so a failed callback can never be replayed
// with the same state; the caller restarts from RegisterState.
func (srv *connectionService) Callback(ctx context.Context, userID uuid.UUID, input usecase.CallbackInput) (*entity.ConnectionSummary, error) {
	adapter, err := srv.adapterFor(input.Provider)
	if err != nil {
		return nil, err
	}
	if err := srv.requireStateStore(); err != nil {
		return nil, err
	}
	if err := srv.requireCipher(); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Handling authorization callback", slog.Any("userID", userID), slog.String("provider", input.Provider.String()))

	// 1. Consume the state. Exactly-once: a concurrent callback with the
	// same state loses here and no provider call is made on its behalf.
	if err := srv.stateStore.ConsumeState(ctx, input.State, userID); err != nil {
		if errors.Is(err, repository.ErrOAuthStateInvalid) {
			srv.log(ctx).Warn("Rejected callback with invalid oauth state", slog.Any("userID", userID), slog.String("provider", input.Provider.String()))

			return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, "state validation failed")
		}

		return nil, errors.Wrap(err, "failed to consume oauth state")
	}

	// 2. Exchange the authorization code for tokens.
	grant, err := adapter.ExchangeCode(ctx, input.Code, input.CodeVerifier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	// 3. Resolve the external account identity.
	identity, err := adapter.FetchIdentity(ctx, grant.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch provider identity")
	}

	// 4. Seal the token material before anything touches storage.
	encryptedAccess, err := srv.cipher.Encrypt(ctx, grant.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt access token")
	}

	var encryptedRefresh string
	if grant.RefreshToken != "" {
		encryptedRefresh, err = srv.cipher.Encrypt(ctx, grant.RefreshToken)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encrypt refresh token")
		}
	}

	now := time.Now()
	conn := &entity.ProviderConnection{
		UserID:                userID,
		Provider:              input.Provider,
		ProviderUserID:        identity.ProviderUserID,
		EncryptedAccessToken:  encryptedAccess,
		EncryptedRefreshToken: encryptedRefresh,
		TokenExpiresAt:        now.Add(time.Duration(grant.ExpiresIn) * time.Second),
		Status:                entity.ConnectionStatusActive,
	}

	// 5. Upsert the connection and reactivate disconnected subscriptions
	// as one unit of work.
	var reconnect bool
	var reactivated int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connRepo := repoFactory.ConnectionRepo()
		subscriptionRepo := repoFactory.SubscriptionRepo()

		_, findErr := connRepo.FindConnectionByUserAndProvider(ctx, userID, input.Provider)
		switch {
		case findErr == nil:
			reconnect = true
		case errors.Is(findErr, repository.ErrConnectionNotFound):
			reconnect = false
		default:
			return errors.Wrap(findErr, "failed to check for existing connection")
		}

		if upsertErr := connRepo.UpsertConnection(ctx, conn); upsertErr != nil {
			return errors.Wrap(upsertErr, "failed to upsert connection")
		}

		var cascadeErr error
		reactivated, cascadeErr = subscriptionRepo.ReactivateDisconnectedSubscriptions(ctx, userID, input.Provider)
		if cascadeErr != nil {
			return errors.Wrap(cascadeErr, "failed to reactivate disconnected subscriptions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute connection upsert transaction",
			slog.Any("userID", userID),
			slog.String("provider", input.Provider.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute connection upsert transaction")
	}

	eventType := service.EventConnectionConnected
	if reconnect {
		eventType = service.EventConnectionReconnected
	}
	srv.publishEvent(ctx, eventType, conn, reactivated)

	srv.log(ctx).Info("Connection established",
		slog.Any("userID", userID),
		slog.String("provider", input.Provider.String()),
		slog.Bool("reconnect", reconnect),
		slog.Int64("reactivatedSubscriptions", reactivated),
		slog.String("tokenFingerprint", util.TokenFingerprint(grant.AccessToken)),
	)

	return conn.Summary(), nil
}

// ListConnections reports one entry per known provider, nil for the
// unlinked ones. Summaries never carry token material.
func (srv *connectionService) ListConnections(ctx context.Context, userID uuid.UUID) (map[entity.Provider]*entity.ConnectionSummary, error) {
	connections, err := srv.connectionRepo.FindConnectionsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list connections", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list connections")
	}

	result := make(map[entity.Provider]*entity.ConnectionSummary, len(entity.KnownProviders()))
	for _, provider := range entity.KnownProviders() {
		result[provider] = nil
	}
	for _, conn := range connections {
		result[conn.Provider] = conn.Summary()
	}

	return result, nil
}

// ListSubscriptions reports every subscription the user holds on one
// platform, whatever its status. Reads go straight to the repository;
// no transaction is needed for a single SELECT.
func (srv *connectionService) ListSubscriptions(ctx context.Context, userID uuid.UUID, provider entity.Provider) ([]*entity.SubscriptionSummary, error) {
	if !provider.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrProviderNotSupported, "unknown provider")
	}

	subscriptions, err := srv.subscriptionRepo.FindSubscriptionsByUserAndProvider(ctx, userID, provider)
	if err != nil {
		srv.log(ctx).Error("Failed to list subscriptions",
			slog.Any("userID", userID),
			slog.String("provider", provider.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	summaries := make([]*entity.SubscriptionSummary, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		summaries = append(summaries, subscription.Summary())
	}

	return summaries, nil
}

// Disconnect severs the link: the connection row is deleted and every
// subscription on it, PAUSED included, is marked DISCONNECTED in the
// same transaction.
func (srv *connectionService) Disconnect(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	if !provider.IsValid() {
		return errors.Wrap(domainerrors.ErrProviderNotSupported, "unknown provider")
	}
	// Disconnect must not succeed in an environment where a later
	// reconnect would be unsafe.
	if err := srv.requireCipher(); err != nil {
		return err
	}

	srv.log(ctx).Info("Disconnecting provider", slog.Any("userID", userID), slog.String("provider", provider.String()))

	var removed *entity.ProviderConnection
	var disconnected int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connRepo := repoFactory.ConnectionRepo()
		subscriptionRepo := repoFactory.SubscriptionRepo()

		conn, findErr := connRepo.FindConnectionByUserAndProvider(ctx, userID, provider)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrConnectionNotFound) {
				return errors.Wrap(domainerrors.ErrConnectionNotFound, "no connection to disconnect")
			}

			return errors.Wrap(findErr, "failed to load connection for disconnect")
		}
		removed = conn

		if deleteErr := connRepo.DeleteConnectionByUserAndProvider(ctx, userID, provider); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete connection")
		}

		var cascadeErr error
		disconnected, cascadeErr = subscriptionRepo.DisconnectSubscriptions(ctx, userID, provider)
		if cascadeErr != nil {
			return errors.Wrap(cascadeErr, "failed to disconnect subscriptions")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrConnectionNotFound) {
			srv.log(ctx).Warn("Disconnect of absent connection", slog.Any("userID", userID), slog.String("provider", provider.String()))

			return err
		}
		srv.log(ctx).Error("Failed to execute disconnect transaction",
			slog.Any("userID", userID),
			slog.String("provider", provider.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to execute disconnect transaction")
	}

	removed.Status = entity.ConnectionStatusDisconnected
	srv.publishEvent(ctx, service.EventConnectionDisconnected, removed, disconnected)

	srv.log(ctx).Info("Provider disconnected",
		slog.Any("userID", userID),
		slog.String("provider", provider.String()),
		slog.Int64("disconnectedSubscriptions", disconnected),
	)

	return nil
}

// StoreRefreshedTokens persists token material obtained by an external
// refresh call. It never creates connections; refreshing something that
// is not connected is a client error.
func (srv *connectionService) StoreRefreshedTokens(ctx context.Context, userID uuid.UUID, input usecase.RefreshedTokensInput) error {
	if !input.Provider.IsValid() {
		return errors.Wrap(domainerrors.ErrProviderNotSupported, "unknown provider")
	}
	if err := srv.requireCipher(); err != nil {
		return err
	}
	if input.AccessToken == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "access token is required")
	}

	encryptedAccess, err := srv.cipher.Encrypt(ctx, input.AccessToken)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt refreshed access token")
	}

	var encryptedRefresh string
	if input.RefreshToken != "" {
		encryptedRefresh, err = srv.cipher.Encrypt(ctx, input.RefreshToken)
		if err != nil {
			return errors.Wrap(err, "failed to encrypt refreshed refresh token")
		}
	}

	expiresAt := time.Now().Add(time.Duration(input.ExpiresIn) * time.Second)

	var wasExpired bool
	var conn *entity.ProviderConnection
	var reactivated int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connRepo := repoFactory.ConnectionRepo()
		subscriptionRepo := repoFactory.SubscriptionRepo()

		existing, findErr := connRepo.FindConnectionByUserAndProvider(ctx, userID, input.Provider)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrConnectionNotFound) {
				return errors.Wrap(domainerrors.ErrConnectionNotFound, "no connection to refresh")
			}

			return errors.Wrap(findErr, "failed to load connection for refresh")
		}
		conn = existing
		wasExpired = existing.Status == entity.ConnectionStatusExpired

		if updateErr := connRepo.UpdateConnectionTokens(ctx, userID, input.Provider, encryptedAccess, encryptedRefresh, expiresAt); updateErr != nil {
			return errors.Wrap(updateErr, "failed to store refreshed tokens")
		}

		var cascadeErr error
		reactivated, cascadeErr = subscriptionRepo.ReactivateDisconnectedSubscriptions(ctx, userID, input.Provider)
		if cascadeErr != nil {
			return errors.Wrap(cascadeErr, "failed to reactivate disconnected subscriptions")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrConnectionNotFound) {
			return err
		}
		srv.log(ctx).Error("Failed to execute refresh storage transaction",
			slog.Any("userID", userID),
			slog.String("provider", input.Provider.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to execute refresh storage transaction")
	}

	// Routine refreshes stay quiet; only the return to health is an event.
	if wasExpired {
		conn.Status = entity.ConnectionStatusActive
		srv.publishEvent(ctx, service.EventConnectionReconnected, conn, reactivated)
	}

	srv.log(ctx).Debug("Stored refreshed tokens",
		slog.Any("userID", userID),
		slog.String("provider", input.Provider.String()),
		slog.Bool("wasExpired", wasExpired),
		slog.String("tokenFingerprint", util.TokenFingerprint(input.AccessToken)),
	)

	return nil
}

// ConnectLink starts a server-initiated flow with a generated state, for
// clients that cannot mint their own (QR and cross-device linking).
func (srv *connectionService) ConnectLink(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*usecase.ConnectLinkOutput, error) {
	adapter, err := srv.adapterFor(provider)
	if err != nil {
		return nil, err
	}
	if err := srv.requireStateStore(); err != nil {
		return nil, err
	}

	state, err := generateState()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate state token")
	}

	record := &entity.OAuthState{
		State:    state,
		UserID:   userID,
		Provider: provider,
	}
	if err := srv.stateStore.RegisterState(ctx, record); err != nil {
		if errors.Is(err, repository.ErrOAuthStateExists) {
			return nil, errors.Wrap(domainerrors.ErrOAuthStateConflict, "generated state collided")
		}

		return nil, errors.Wrap(err, "failed to register generated state")
	}

	srv.log(ctx).Debug("Issued connect link", slog.Any("userID", userID), slog.String("provider", provider.String()))

	return &usecase.ConnectLinkOutput{
		URL:   adapter.AuthorizationURL(state),
		State: state,
	}, nil
}

// ConnectLinkQR renders the connect link as a QR PNG.
func (srv *connectionService) ConnectLinkQR(ctx context.Context, userID uuid.UUID, provider entity.Provider) ([]byte, error) {
	link, err := srv.ConnectLink(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateLinkQR(link.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render connect link QR")
	}

	return png, nil
}

// publishEvent emits a lifecycle event after a committed transition.
// Publishing is best-effort: the user's operation already succeeded, so
// a broker hiccup is logged and swallowed.
func (srv *connectionService) publishEvent(ctx context.Context, eventType string, conn *entity.ProviderConnection, cascaded int64) {
	if srv.eventPublisher == nil {
		return
	}

	event := &service.ConnectionEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventType:      eventType,
		UserID:         conn.UserID.String(),
		Provider:       conn.Provider.String(),
		ProviderUserID: conn.ProviderUserID,
		Status:         conn.Status.String(),
		OccurredAt:     time.Now().UnixMilli(),
		Subscriptions:  cascaded,
	}

	if err := srv.eventPublisher.PublishConnectionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish connection event",
			slog.String("eventType", eventType),
			slog.Any("userID", conn.UserID),
			slog.String("provider", conn.Provider.String()),
			slog.Any("error", err),
		)
	}
}

// generateState mints a 64-character hex state token (256 bits of entropy).
func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

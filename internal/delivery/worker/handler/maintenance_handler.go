package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"inlet/config"
	deliverycontext "inlet/internal/delivery/context"
	"inlet/internal/domain/constants"
	"inlet/internal/domain/entity"
	"inlet/internal/domain/repository"
	"inlet/internal/domain/service"
	"inlet/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TaskExpirySweep transitions overdue ACTIVE connections to EXPIRED and
// cascades their subscriptions. Scheduled ticks publish it periodically.
const TaskExpirySweep = "expiry_sweep"

// sweepBatchSize bounds how many overdue connections one fetch pulls.
const sweepBatchSize = 200

// MaintenanceTask is the payload a scheduled tick delivers through Pub/Sub.
type MaintenanceTask struct {
	Task      string `json:"task"`
	RequestID string `json:"request_id,omitempty"`
}

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// MaintenanceHandler handles Pub/Sub push messages carrying scheduled
// maintenance tasks for the connection ledger.
type MaintenanceHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	txManager      repository.TransactionManager
	connectionRepo repository.ConnectionRepository
	stateStore     repository.OAuthStateStore
	eventPublisher service.EventPublisher
}

// MaintenanceHandlerParams holds dependencies for the MaintenanceHandler
type MaintenanceHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	TxManager      repository.TransactionManager
	ConnectionRepo repository.ConnectionRepository
	StateStore     repository.OAuthStateStore `optional:"true"`
	EventPublisher service.EventPublisher
}

// NewMaintenanceHandler creates a new Pub/Sub maintenance handler
func NewMaintenanceHandler(params MaintenanceHandlerParams) *MaintenanceHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &MaintenanceHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		txManager:      params.TxManager,
		connectionRepo: params.ConnectionRepo,
		stateStore:     params.StateStore,
		eventPublisher: params.EventPublisher,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *MaintenanceHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse maintenance task
	var task MaintenanceTask
	if err := json.Unmarshal(data, &task); err != nil {
		h.logger.Error("[Worker] Failed to parse maintenance task", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > task field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &task)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing maintenance task", slog.String("task", task.Task))

	if err := h.processTask(ctx, &task); err != nil {
		reqLogger.Error("[Worker] Failed to process maintenance task",
			slog.String("task", task.Task),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Maintenance task processed successfully", slog.String("task", task.Task))

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, task, or generates a new one
func (h *MaintenanceHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, task *MaintenanceTask) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try task field (from JSON payload)
	if task.RequestID != "" {
		return task.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processTask dispatches a maintenance task to its implementation
func (h *MaintenanceHandler) processTask(ctx context.Context, task *MaintenanceTask) error {
	switch task.Task {
	case TaskExpirySweep:
		return h.runExpirySweep(ctx)
	default:
		// Unknown tasks are dropped, not retried; redelivery cannot fix them.
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Unknown maintenance task",
			slog.String("task", task.Task),
		)

		return nil
	}
}

// runExpirySweep transitions every ACTIVE connection whose access token
// has passed its expiry to EXPIRED, disconnecting only the ACTIVE
// subscriptions on it. PAUSED subscriptions stay paused: expiry is not a
// user decision, so it must not erase one.
func (h *MaintenanceHandler) runExpirySweep(ctx context.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	start := time.Now()
	cutoff := start
	expired := 0
	failed := 0

	for {
		connections, err := h.connectionRepo.FindActiveConnectionsExpiredBefore(ctx, cutoff, sweepBatchSize)
		if err != nil {
			return newRetryableError(errors.WithStack(err))
		}

		if len(connections) == 0 {
			break
		}

		progressed := 0
		for _, conn := range connections {
			disconnected, transitioned, expireErr := h.expireConnection(ctx, conn)
			if expireErr != nil {
				logger.Error("[Worker] Failed to expire connection",
					slog.String("connection_id", conn.ID.String()),
					slog.String("provider", conn.Provider.String()),
					slog.Any("error", expireErr),
				)
				failed++

				continue
			}

			progressed++
			if !transitioned {
				// A concurrent refresh or disconnect moved the row on first.
				continue
			}

			expired++
			h.publishExpiredEvent(ctx, conn, disconnected)
		}

		// A batch with no progress would refetch the same rows forever.
		if progressed == 0 {
			break
		}

		if len(connections) < sweepBatchSize {
			break
		}
	}

	h.purgeExpiredStates(ctx)

	logger.Info("[Worker] Expiry sweep completed",
		slog.Int("expired", expired),
		slog.Int("failed", failed),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	if failed > 0 {
		return newRetryableError(errors.Errorf("%d connections failed to expire", failed))
	}

	return nil
}

// expireConnection marks one connection EXPIRED and cascades its ACTIVE
// subscriptions in a single transaction. transitioned is false when the
// row was no longer ACTIVE by the time the sweep reached it.
func (h *MaintenanceHandler) expireConnection(ctx context.Context, conn *entity.ProviderConnection) (disconnected int64, transitioned bool, err error) {
	err = h.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connRepo := repoFactory.ConnectionRepo()
		subscriptionRepo := repoFactory.SubscriptionRepo()

		if markErr := connRepo.MarkConnectionExpired(ctx, conn.ID); markErr != nil {
			if errors.Is(markErr, repository.ErrConnectionNotFound) {
				return nil
			}

			return errors.Wrap(markErr, "failed to mark connection expired")
		}
		transitioned = true

		var cascadeErr error
		disconnected, cascadeErr = subscriptionRepo.DisconnectActiveSubscriptions(ctx, conn.UserID, conn.Provider)
		if cascadeErr != nil {
			return errors.Wrap(cascadeErr, "failed to disconnect active subscriptions")
		}

		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return disconnected, transitioned, nil
}

// publishExpiredEvent emits the lifecycle event for one expired
// connection. Publishing is best-effort; the transition already committed.
func (h *MaintenanceHandler) publishExpiredEvent(ctx context.Context, conn *entity.ProviderConnection, disconnected int64) {
	if h.eventPublisher == nil {
		return
	}

	event := &service.ConnectionEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventType:      service.EventConnectionExpired,
		UserID:         conn.UserID.String(),
		Provider:       conn.Provider.String(),
		ProviderUserID: conn.ProviderUserID,
		Status:         entity.ConnectionStatusExpired.String(),
		OccurredAt:     time.Now().UnixMilli(),
		Subscriptions:  disconnected,
	}

	if err := h.eventPublisher.PublishConnectionEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Failed to publish expiry event",
			slog.String("connection_id", conn.ID.String()),
			slog.Any("error", err),
		)
	}
}

// purgeExpiredStates drops authorization states whose TTL elapsed. The
// consume path never depends on this; it only keeps the table small.
func (h *MaintenanceHandler) purgeExpiredStates(ctx context.Context) {
	if h.stateStore == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	purged, err := h.stateStore.PurgeExpiredStates(ctx)
	if err != nil {
		logger.Warn("[Worker] Failed to purge expired oauth states", slog.Any("error", err))

		return
	}

	if purged > 0 {
		logger.Info("[Worker] Purged expired oauth states", slog.Int64("purged", purged))
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

package handler

import (
	"net/http"

	"inlet/internal/delivery/api/middleware"
	"inlet/internal/delivery/api/response"
	"inlet/internal/domain/entity"
	"inlet/internal/domain/repository"
	"inlet/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation and for
// seeding subscription fixtures, so the disconnect/reconnect cascades can
// be exercised end to end in environments with test routes enabled.
type TestHandler struct {
	subscriptionRepo repository.SubscriptionRepository
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(subscriptionRepo repository.SubscriptionRepository) *TestHandler {
	return &TestHandler{
		subscriptionRepo: subscriptionRepo,
	}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	// Get user information from context (set by auth middleware)
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User roles not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"roles":   roles,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// CreateSubscriptionRequest represents the request body for seeding a subscription fixture
type CreateSubscriptionRequest struct {
	Provider          string `json:"provider" validate:"required"`
	ProviderChannelID string `json:"provider_channel_id" validate:"required"`
	Title             string `json:"title" validate:"required"`

	// Status is optional and defaults to ACTIVE; PAUSED fixtures let the
	// cascade rules around deliberate pauses be exercised too.
	Status string `json:"status"`
}

// CreateSubscription seeds a subscription row for the authenticated caller.
// Subscription rows are normally written by the feed service; this fixture
// endpoint stands in for it where test routes are enabled.
func (h *TestHandler) CreateSubscription(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	provider := entity.Provider(req.Provider)
	if !provider.IsValid() {
		return response.BadRequest(c, "PROVIDER_NOT_SUPPORTED", "Unknown provider")
	}

	status := entity.SubscriptionStatusActive
	if req.Status != "" {
		status = entity.SubscriptionStatus(req.Status)
		if !status.IsValid() {
			return response.BadRequest(c, "VALIDATION_ERROR", "Unknown subscription status")
		}
	}

	subscription := &entity.Subscription{
		UserID:            userID,
		Provider:          provider,
		ProviderChannelID: req.ProviderChannelID,
		Title:             req.Title,
		Status:            status,
	}

	if err := h.subscriptionRepo.CreateSubscription(c.Request().Context(), subscription); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription.Summary())
}

// GetSubscription returns one seeded subscription, so status flips from
// disconnect, reconnect and expiry runs can be observed directly.
func (h *TestHandler) GetSubscription(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid subscription ID")
	}

	subscription, err := h.subscriptionRepo.FindSubscriptionByID(c.Request().Context(), subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return response.NotFound(c, "NOT_FOUND", "Subscription not found")
		}

		return response.HandleAppError(c, err)
	}

	// Callers only see their own rows.
	if subscription.UserID != userID {
		return response.NotFound(c, "NOT_FOUND", "Subscription not found")
	}

	return response.Success(c, http.StatusOK, subscription.Summary())
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inlet/internal/delivery/api/middleware"
	"inlet/internal/delivery/api/validator"
	"inlet/internal/domain/entity"
	"inlet/internal/domain/repository"
	"inlet/internal/domain/service"
	mockRepo "inlet/internal/mocks/repository"
	mockSvc "inlet/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// grantAccess builds a token service that accepts the fixture token and
// resolves it to the given user.
func grantAccess(t *testing.T, userID uuid.UUID) *mockSvc.MockTokenService {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("fixture-token").
		Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)

	return tokenSvc
}

// invokeSubscriptionEndpoint runs a handler behind the real Authenticate
// middleware, the same chain the test routes register.
func invokeSubscriptionEndpoint(t *testing.T, tokenSvc service.TokenService, handlerFunc echo.HandlerFunc, method, target, body, subscriptionID string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("Authorization", "Bearer fixture-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if subscriptionID != "" {
		c.SetParamNames("id")
		c.SetParamValues(subscriptionID)
	}

	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)
	err := authMiddleware.Authenticate(handlerFunc)(c)
	assert.NoError(t, err)

	return rec
}

func TestTestHandler_CreateSubscription(t *testing.T) {
	userID := uuid.New()
	subscriptionID := uuid.New()

	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	subscriptionRepo.EXPECT().
		CreateSubscription(mock.Anything, mock.AnythingOfType("*entity.Subscription")).
		RunAndReturn(func(_ context.Context, subscription *entity.Subscription) error {
			assert.Equal(t, userID, subscription.UserID)
			assert.Equal(t, entity.ProviderYouTube, subscription.Provider)
			assert.Equal(t, "UC_channel", subscription.ProviderChannelID)
			assert.Equal(t, "Some Channel", subscription.Title)
			assert.Equal(t, entity.SubscriptionStatusActive, subscription.Status)

			subscription.ID = subscriptionID
			subscription.CreatedAt = time.Now()
			subscription.UpdatedAt = time.Now()

			return nil
		})

	h := NewTestHandler(subscriptionRepo)
	body := `{"provider":"youtube","provider_channel_id":"UC_channel","title":"Some Channel"}`
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, userID), h.CreateSubscription, http.MethodPost, "/test/subscriptions", body, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), subscriptionID.String())
	assert.Contains(t, rec.Body.String(), `"status":"ACTIVE"`)
}

func TestTestHandler_CreateSubscription_PausedStatus(t *testing.T) {
	userID := uuid.New()

	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	subscriptionRepo.EXPECT().
		CreateSubscription(mock.Anything, mock.AnythingOfType("*entity.Subscription")).
		RunAndReturn(func(_ context.Context, subscription *entity.Subscription) error {
			assert.Equal(t, entity.SubscriptionStatusPaused, subscription.Status)

			subscription.ID = uuid.New()

			return nil
		})

	h := NewTestHandler(subscriptionRepo)
	body := `{"provider":"spotify","provider_channel_id":"37i9dQ","title":"Daily Mix","status":"PAUSED"}`
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, userID), h.CreateSubscription, http.MethodPost, "/test/subscriptions", body, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"PAUSED"`)
}

func TestTestHandler_CreateSubscription_UnknownProvider(t *testing.T) {
	h := NewTestHandler(mockRepo.NewMockSubscriptionRepository(t))
	body := `{"provider":"twitch","provider_channel_id":"ch_1","title":"Stream"}`
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, uuid.New()), h.CreateSubscription, http.MethodPost, "/test/subscriptions", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROVIDER_NOT_SUPPORTED")
}

func TestTestHandler_CreateSubscription_MissingTitle(t *testing.T) {
	h := NewTestHandler(mockRepo.NewMockSubscriptionRepository(t))
	body := `{"provider":"youtube","provider_channel_id":"UC_channel"}`
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, uuid.New()), h.CreateSubscription, http.MethodPost, "/test/subscriptions", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestTestHandler_CreateSubscription_UnknownStatus(t *testing.T) {
	h := NewTestHandler(mockRepo.NewMockSubscriptionRepository(t))
	body := `{"provider":"youtube","provider_channel_id":"UC_channel","title":"Some Channel","status":"SLEEPING"}`
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, uuid.New()), h.CreateSubscription, http.MethodPost, "/test/subscriptions", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestTestHandler_GetSubscription(t *testing.T) {
	userID := uuid.New()
	subscription := &entity.Subscription{
		ID:                uuid.New(),
		UserID:            userID,
		Provider:          entity.ProviderYouTube,
		ProviderChannelID: "UC_channel",
		Title:             "Some Channel",
		Status:            entity.SubscriptionStatusPaused,
		CreatedAt:         time.Now().Add(-24 * time.Hour),
		UpdatedAt:         time.Now(),
	}

	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	subscriptionRepo.EXPECT().
		FindSubscriptionByID(mock.Anything, subscription.ID).
		Return(subscription, nil)

	h := NewTestHandler(subscriptionRepo)
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, userID), h.GetSubscription, http.MethodGet, "/test/subscriptions/"+subscription.ID.String(), "", subscription.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "UC_channel")
	assert.Contains(t, rec.Body.String(), `"status":"PAUSED"`)
}

func TestTestHandler_GetSubscription_NotFound(t *testing.T) {
	subscriptionID := uuid.New()

	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	subscriptionRepo.EXPECT().
		FindSubscriptionByID(mock.Anything, subscriptionID).
		Return(nil, repository.ErrSubscriptionNotFound)

	h := NewTestHandler(subscriptionRepo)
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, uuid.New()), h.GetSubscription, http.MethodGet, "/test/subscriptions/"+subscriptionID.String(), "", subscriptionID.String())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestTestHandler_GetSubscription_OtherOwner(t *testing.T) {
	subscription := &entity.Subscription{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		Provider:          entity.ProviderGmail,
		ProviderChannelID: "newsletter@example.com",
		Title:             "Weekly Digest",
		Status:            entity.SubscriptionStatusActive,
	}

	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	subscriptionRepo.EXPECT().
		FindSubscriptionByID(mock.Anything, subscription.ID).
		Return(subscription, nil)

	h := NewTestHandler(subscriptionRepo)
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, uuid.New()), h.GetSubscription, http.MethodGet, "/test/subscriptions/"+subscription.ID.String(), "", subscription.ID.String())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTestHandler_GetSubscription_MalformedID(t *testing.T) {
	h := NewTestHandler(mockRepo.NewMockSubscriptionRepository(t))
	rec := invokeSubscriptionEndpoint(t, grantAccess(t, uuid.New()), h.GetSubscription, http.MethodGet, "/test/subscriptions/not-a-uuid", "", "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

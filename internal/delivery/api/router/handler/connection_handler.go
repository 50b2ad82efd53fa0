package handler

import (
	"log/slog"
	"net/http"

	"inlet/internal/delivery/api/middleware"
	"inlet/internal/delivery/api/response"
	"inlet/internal/domain/entity"
	"inlet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConnectionHandlerParams holds dependencies for ConnectionHandler, injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// ConnectionHandler holds dependencies for provider-connection handlers
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler
func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

// RegisterStateRequest represents the request body for registering an OAuth state
type RegisterStateRequest struct {
	State string `json:"state" validate:"required"`
}

// CallbackRequest represents the request body for completing an authorization flow
type CallbackRequest struct {
	Code         string `json:"code" validate:"required"`
	State        string `json:"state" validate:"required"`
	CodeVerifier string `json:"code_verifier"`
}

// StoreTokensRequest represents the request body for storing externally refreshed tokens
type StoreTokensRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in" validate:"gt=0"`
}

// ConnectLinkResponse represents the response body for a server-initiated connect link
type ConnectLinkResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// RegisterState handles registering a client-generated OAuth state for one flow
func (h *ConnectionHandler) RegisterState(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.Provider(c.Param("provider"))

	var req RegisterStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid state input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.connectionUC.RegisterState(c.Request().Context(), userID, provider, req.State); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "State registered successfully"})
}

// Callback handles the authorization callback for a provider
func (h *ConnectionHandler) Callback(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.Provider(c.Param("provider"))

	var req CallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CallbackInput{
		Provider:     provider,
		Code:         req.Code,
		State:        req.State,
		CodeVerifier: req.CodeVerifier,
	}

	summary, err := h.connectionUC.Callback(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// ListConnections handles listing the user's connections across all known providers
func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	connections, err := h.connectionUC.ListConnections(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connections)
}

// ListSubscriptions handles listing the user's subscriptions on one provider
func (h *ConnectionHandler) ListSubscriptions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.Provider(c.Param("provider"))

	subscriptions, err := h.connectionUC.ListSubscriptions(c.Request().Context(), userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions)
}

// Disconnect handles severing the link to one provider
func (h *ConnectionHandler) Disconnect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.Provider(c.Param("provider"))

	if err := h.connectionUC.Disconnect(c.Request().Context(), userID, provider); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Provider disconnected successfully"})
}

// StoreTokens handles persisting externally refreshed token material
func (h *ConnectionHandler) StoreTokens(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.Provider(c.Param("provider"))

	var req StoreTokensRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.RefreshedTokensInput{
		Provider:     provider,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		ExpiresIn:    req.ExpiresIn,
	}

	if err := h.connectionUC.StoreRefreshedTokens(c.Request().Context(), userID, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Tokens stored successfully"})
}

// ConnectLink handles issuing a server-initiated authorization link
func (h *ConnectionHandler) ConnectLink(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.Provider(c.Param("provider"))

	link, err := h.connectionUC.ConnectLink(c.Request().Context(), userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ConnectLinkResponse{
		URL:   link.URL,
		State: link.State,
	})
}

// ConnectLinkQR handles rendering the authorization link as a QR code
func (h *ConnectionHandler) ConnectLinkQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.Provider(c.Param("provider"))

	qrCode, err := h.connectionUC.ConnectLinkQR(c.Request().Context(), userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=connect-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inlet/config"
	"inlet/internal/delivery/api/middleware"
	"inlet/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ConnectionHandler *handler.ConnectionHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	connectionHandler *handler.ConnectionHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		connectionHandler: params.ConnectionHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Provider connection management routes
	connectionsGroup := apiV1.Group("/connections")
	{
		connectionsGroup.GET("", r.connectionHandler.ListConnections)
		connectionsGroup.GET("/:provider/subscriptions", r.connectionHandler.ListSubscriptions)

		// OAuth flow routes for a single provider
		connectionsGroup.POST("/:provider/state", r.connectionHandler.RegisterState)
		connectionsGroup.POST("/:provider/callback", r.connectionHandler.Callback)
		connectionsGroup.DELETE("/:provider", r.connectionHandler.Disconnect)

		// Token maintenance performed by the refresh pipeline
		connectionsGroup.PUT("/:provider/tokens", r.connectionHandler.StoreTokens)

		// Server-initiated linking (QR and cross-device flows)
		connectionsGroup.POST("/:provider/link", r.connectionHandler.ConnectLink)
		connectionsGroup.GET("/:provider/link/qr", r.connectionHandler.ConnectLinkQR)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		// Test routes that require authentication
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)

			// Subscription fixtures for exercising the status cascades
			testGroup.POST("/subscriptions", r.testHandler.CreateSubscription)
			testGroup.GET("/subscriptions/:id", r.testHandler.GetSubscription)
		}
	}
}

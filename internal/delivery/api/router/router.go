// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blindauth/config"
	"blindauth/internal/delivery/api/middleware"
	"blindauth/internal/delivery/api/router/handler"
	"blindauth/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.ExtractBearer)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword, r.authMiddleware.Authenticate)
	}

	e.GET("/users", r.authHandler.ListUsers, r.authMiddleware.Authenticate)
}

// RegisterMetricsRoute exposes the prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if !r.config.Metrics.Enabled || r.registry == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/router/handler"
	"gatekeeper/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/api/user")
	{
		// Public routes
		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/login", r.accountHandler.Login)
	}

	// Routes that require a valid bearer token
	authGroup := e.Group("/api/user")
	authGroup.Use(r.authMiddleware.Authenticate)
	{
		authGroup.GET("/profile", r.accountHandler.GetProfile)
		authGroup.PUT("/updateProfile", r.accountHandler.UpdateProfile)
		authGroup.PATCH("/changePassword", r.accountHandler.ChangePassword)
		authGroup.DELETE("/deleteAccount", r.accountHandler.DeleteAccount)
	}

	// Administrative routes
	adminGroup := e.Group("/api/user")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/all", r.accountHandler.ListAccounts)
		adminGroup.POST("/updateRole", r.accountHandler.UpdateRole)
		adminGroup.PUT("/:id", r.accountHandler.UpdateAccountByID)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portal/config"
	"portal/internal/delivery/api/middleware"
	"portal/internal/delivery/api/router/handler"
	"portal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	DraftHandler   *handler.DraftHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	draftHandler   *handler.DraftHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		draftHandler:   params.DraftHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/student", r.authHandler.RegisterStudent)
		authGroup.POST("/register/teacher", r.authHandler.RegisterTeacher)
		authGroup.POST("/login/:role", r.authHandler.Login)
		authGroup.POST("/exchange/:role", r.authHandler.Exchange)
	}

	// The derived code is not a secret; the helper is opt-in for demos
	if r.config.Verification != nil && r.config.Verification.ExposeDerive {
		e.GET("/verification/code", r.authHandler.VerificationCode)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Each role reads its own dashboard; a token for the other role is refused
	studentGroup := apiV1.Group("/student")
	studentGroup.Use(r.authMiddleware.RequireRole(entity.RoleStudent))
	{
		studentGroup.GET("/me", r.profileHandler.GetProfile)
		studentGroup.GET("/me/card", r.profileHandler.StudentCard)

		drafts := studentGroup.Group("/drafts")
		drafts.POST("", r.draftHandler.Open)
		drafts.GET("/:id", r.draftHandler.Get)
		drafts.PATCH("/:id/fields", r.draftHandler.SetField)
		drafts.POST("/:id/subjects", r.draftHandler.ToggleSubject)
		drafts.PUT("/:id/asset", r.draftHandler.SelectAsset)
		drafts.POST("/:id/next", r.draftHandler.Next)
		drafts.POST("/:id/back", r.draftHandler.Back)
		drafts.POST("/:id/submit", r.draftHandler.Submit)
		drafts.DELETE("/:id", r.draftHandler.Discard)
	}

	teacherGroup := apiV1.Group("/teacher")
	teacherGroup.Use(r.authMiddleware.RequireRole(entity.RoleTeacher))
	{
		teacherGroup.GET("/me", r.profileHandler.GetProfile)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ladle/internal/delivery/http/middleware"
	"ladle/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RecipeHandler     *handler.RecipeHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	recipeHandler     *handler.RecipeHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		recipeHandler:     params.RecipeHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account and session routes. These resolve the session cookie
	// themselves, so they sit outside the session middleware.
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)
	e.DELETE("/logout", r.authHandler.Logout)
	e.DELETE("/logout_all", r.authHandler.LogoutAll)
	e.GET("/check_session", r.authHandler.CheckSession)

	// Recipe routes require a live session.
	recipeGroup := e.Group("/recipes")
	recipeGroup.Use(r.sessionMiddleware.Authenticate)
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.POST("", r.recipeHandler.Create)
		recipeGroup.GET("/:id", r.recipeHandler.Get)
	}
}

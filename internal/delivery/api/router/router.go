// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"directory/config"
	"directory/internal/delivery/api/middleware"
	"directory/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const adminPrefix = "/admin/plugins/company-directory"

type RouterParams struct {
	fx.In

	DirectoryHandler  *handler.DirectoryHandler
	MyBusinessHandler *handler.MyBusinessHandler
	AdminHandler      *handler.AdminHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	directoryHandler  *handler.DirectoryHandler
	myBusinessHandler *handler.MyBusinessHandler
	adminHandler      *handler.AdminHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		directoryHandler:  params.DirectoryHandler,
		myBusinessHandler: params.MyBusinessHandler,
		adminHandler:      params.AdminHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public directory
	directoryGroup := e.Group("/directory")
	{
		directoryGroup.GET("", r.directoryHandler.ListListings)
		directoryGroup.GET("/:cityCategory", r.directoryHandler.CityCategoryPage)
		directoryGroup.GET("/:cityCategory/:slug", r.directoryHandler.ListingProfile)
		directoryGroup.GET("/:cityCategory/:slug/qr", r.directoryHandler.ListingQRCode)
	}
	e.GET("/company-directory-sitemap", r.directoryHandler.Sitemap)

	// Owner listing management, mutations are throttled per user
	myBusinessGroup := e.Group("/my-business")
	myBusinessGroup.Use(r.authMiddleware.Authenticate)
	myBusinessGroup.Use(middleware.NewMutationRateLimiter(r.config))
	{
		myBusinessGroup.GET("", r.myBusinessHandler.GetMyBusiness)
		myBusinessGroup.POST("", r.myBusinessHandler.CreateListing)
		myBusinessGroup.PUT("/:id", r.myBusinessHandler.UpdateListing)
		myBusinessGroup.DELETE("/:id", r.myBusinessHandler.DeleteListing)
	}

	// Staff moderation
	adminGroup := e.Group(adminPrefix)
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireStaff) // Then, check for the role
	{
		adminGroup.GET("", r.adminHandler.Dashboard)
		adminGroup.GET("/listings", r.adminHandler.ListListings)
		adminGroup.POST("/listings/bulk", r.adminHandler.BulkAction)
		adminGroup.PUT("/listings/:id", r.adminHandler.UpdateListing)
		adminGroup.DELETE("/listings/:id", r.adminHandler.DeleteListing)
		adminGroup.GET("/analytics", r.adminHandler.Analytics)
		adminGroup.GET("/settings", r.adminHandler.GetSettings)
		adminGroup.PUT("/settings", r.adminHandler.UpdateSettings)
		adminGroup.DELETE("/users/:userId/listings", r.adminHandler.RemoveUserListings)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}

package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/builditdreamz/builditdreamz_backend/controllers"
)

// RegisterAdminRoutes sets up admin login and the live lead feed
func RegisterAdminRoutes(e *echo.Echo, adminController *controllers.AdminController, guard echo.MiddlewareFunc) {
	admin := e.Group("/api/admin")

	// Public routes (no auth required)
	admin.POST("/login", adminController.Login)

	// Protected routes (require admin authentication)
	protected := admin.Group("", guard)
	protected.GET("/ws", adminController.LeadFeed)
}

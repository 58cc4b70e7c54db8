package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/controllers"
	"github.com/builditdreamz/builditdreamz_backend/middleware"
)

// Controllers bundles every handler the API mounts
type Controllers struct {
	Requirement *controllers.RequirementController
	Enquiry     *controllers.EnquiryController
	Blog        *controllers.BlogController
	OTP         *controllers.OTPController
	Admin       *controllers.AdminController
}

// SetupRoutes configures all API routes. Everything is public except the
// lead listings and the lead feed, which sit behind AdminGuard.
func SetupRoutes(e *echo.Echo, ctrl *Controllers, jwtSecret string, logger *zap.Logger) {
	guard := middleware.AdminGuard(jwtSecret, logger)

	RegisterLeadRoutes(e, ctrl.Requirement, ctrl.Enquiry, guard)
	RegisterOTPRoutes(e, ctrl.OTP)
	RegisterBlogRoutes(e, ctrl.Blog)
	RegisterAdminRoutes(e, ctrl.Admin, guard)
}

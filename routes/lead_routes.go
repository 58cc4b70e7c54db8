package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/builditdreamz/builditdreamz_backend/controllers"
)

// RegisterLeadRoutes mounts requirement and enquiry intake
func RegisterLeadRoutes(e *echo.Echo, requirementController *controllers.RequirementController, enquiryController *controllers.EnquiryController, guard echo.MiddlewareFunc) {
	api := e.Group("/api")

	api.POST("/requirement", requirementController.CreateRequirement)
	api.GET("/requirement", requirementController.GetRequirements, guard)

	api.POST("/enquiries", enquiryController.CreateEnquiry)
	api.GET("/enquiries", enquiryController.GetEnquiries, guard)
}

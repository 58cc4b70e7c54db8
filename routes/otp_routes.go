package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/builditdreamz/builditdreamz_backend/controllers"
)

func RegisterOTPRoutes(e *echo.Echo, otpController *controllers.OTPController) {
	api := e.Group("/api")

	// legacy relay, the caller picks the code
	api.POST("/send-email", otpController.SendEmail)

	otp := api.Group("/otp")
	otp.POST("/send", otpController.SendOTP)
	otp.POST("/verify", otpController.VerifyOTP)
}

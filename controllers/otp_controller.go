package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/models"
	"github.com/builditdreamz/builditdreamz_backend/services"
)

// OTPController relays verification codes and checks server-held challenges
type OTPController struct {
	challenges OTPChallenges
	relay      services.OTPRelay
	logger     *zap.Logger
}

func NewOTPController(challenges OTPChallenges, relay services.OTPRelay, logger *zap.Logger) *OTPController {
	return &OTPController{
		challenges: challenges,
		relay:      relay,
		logger:     logger,
	}
}

// SendEmail relays a caller-generated code. Relay failures answer 502, not 200.
func (oc *OTPController) SendEmail(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	var req models.SendEmailRequest
	if err := c.Bind(&req); err != nil {
		oc.logger.Error("error in send-email route", zap.Error(err))
		return internalServerError(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and OTP are required",
		})
	}

	if err := oc.relay.SendOTP(ctx, req.Email, req.OTP); err != nil {
		oc.logger.Error("failed to send email", zap.Error(err))
		return relayFailure(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Email sent successfully",
	})
}

// SendOTP issues a new code for the email and mails it
func (oc *OTPController) SendOTP(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	var req models.OTPSendRequest
	if err := c.Bind(&req); err != nil {
		oc.logger.Error("error in otp send route", zap.Error(err))
		return internalServerError(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email is required",
		})
	}

	if err := oc.challenges.Send(ctx, req.Email); err != nil {
		oc.logger.Error("failed to send otp", zap.Error(err))
		return relayFailure(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "OTP sent successfully",
	})
}

// VerifyOTP compares the entered code with the latest one sent. A mismatch
// is a re-prompt, not an error.
func (oc *OTPController) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		oc.logger.Error("error in otp verify route", zap.Error(err))
		return internalServerError(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and OTP are required",
		})
	}

	if !oc.challenges.Verify(req.Email, req.OTP) {
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "Invalid OTP. Please try again.",
			Data:    models.OTPVerifyResponse{Verified: false, Message: "Invalid OTP. Please try again."},
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "OTP verified",
		Data:    models.OTPVerifyResponse{Verified: true},
	})
}

func relayFailure(c echo.Context, err error) error {
	return c.JSON(http.StatusBadGateway, models.Response{
		Status:  http.StatusBadGateway,
		Message: "Failed to send email",
		Data:    map[string]string{"error": err.Error()},
	})
}

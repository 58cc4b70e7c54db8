package controllers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/builditdreamz/builditdreamz_backend/middleware"
	"github.com/builditdreamz/builditdreamz_backend/models"
	"github.com/builditdreamz/builditdreamz_backend/websocket"
)

// AdminCredentials identify the single admin account. PasswordHash (bcrypt)
// takes precedence over Password when both are set.
type AdminCredentials struct {
	Email        string
	Password     string
	PasswordHash string
}

// AdminController issues admin tokens and serves the live lead feed
type AdminController struct {
	creds     AdminCredentials
	jwtSecret string
	hub       *websocket.Hub
	logger    *zap.Logger
}

func NewAdminController(creds AdminCredentials, jwtSecret string, hub *websocket.Hub, logger *zap.Logger) *AdminController {
	return &AdminController{
		creds:     creds,
		jwtSecret: jwtSecret,
		hub:       hub,
		logger:    logger,
	}
}

func (ac *AdminController) Login(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		ac.logger.Error("error in admin login route", zap.Error(err))
		return internalServerError(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	if !ac.checkCredentials(req.Email, req.Password) {
		ac.logger.Info("admin login rejected", zap.String("remote_ip", c.RealIP()))
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid admin credentials",
		})
	}

	token, expiresAt, err := middleware.GenerateJWT(ac.jwtSecret, ac.creds.Email)
	if err != nil {
		ac.logger.Error("failed to generate admin token", zap.Error(err))
		return internalServerError(c)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Admin login successful",
		Data: models.AdminLoginResponse{
			Token:     token,
			ExpiresAt: expiresAt.Unix(),
		},
	})
}

func (ac *AdminController) checkCredentials(email, password string) bool {
	if ac.creds.Email == "" || !strings.EqualFold(email, ac.creds.Email) {
		return false
	}
	if ac.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(ac.creds.PasswordHash), []byte(password)) == nil
	}
	if ac.creds.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(ac.creds.Password)) == 1
}

// LeadFeed upgrades to a websocket that receives every new lead. Mounted behind AdminGuard.
func (ac *AdminController) LeadFeed(c echo.Context) error {
	email := ""
	if claims, ok := c.Get(middleware.ClaimsContextKey).(*middleware.JwtCustomClaims); ok {
		email = claims.Email
	}
	return websocket.HandleWebSocket(c, ac.hub, email)
}

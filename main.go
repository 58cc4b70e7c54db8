package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/config"
	"github.com/builditdreamz/builditdreamz_backend/controllers"
	"github.com/builditdreamz/builditdreamz_backend/middleware"
	"github.com/builditdreamz/builditdreamz_backend/repositories"
	"github.com/builditdreamz/builditdreamz_backend/routes"
	"github.com/builditdreamz/builditdreamz_backend/services"
	"github.com/builditdreamz/builditdreamz_backend/utils"
	"github.com/builditdreamz/builditdreamz_backend/websocket"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, admin login and lead listings will reject every request")
	}

	// Connect to database
	client, err := config.ConnectDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	db := client.Database(cfg.DBName)

	// Connect to Redis (optional)
	redisClient := config.ConnectRedis(cfg, logger)

	// Create WebSocket hub
	wsHub := websocket.NewHub(logger)
	go wsHub.Run()

	// Mail
	mailer := services.NewSMTPMailer(cfg.SMTP, logger)
	otpRelay := services.NewMailOTPRelay(mailer)
	otpRegistry := services.NewOTPRegistry(otpRelay)
	notifier := services.NewLeadNotifier(mailer, cfg.NotifyEmail, logger)

	// Initialize repositories
	requirementRepo := repositories.NewRequirementRepository(db)
	enquiryRepo := repositories.NewEnquiryRepository(db)
	postRepo := repositories.NewPostRepository(db)

	// Initialize controllers
	ctrl := &routes.Controllers{
		Requirement: controllers.NewRequirementController(requirementRepo, wsHub, notifier, logger),
		Enquiry:     controllers.NewEnquiryController(enquiryRepo, wsHub, notifier, logger),
		Blog:        controllers.NewBlogController(postRepo, services.NewPostCache(redisClient), otpRegistry, logger),
		OTP:         controllers.NewOTPController(otpRegistry, otpRelay, logger),
		Admin: controllers.NewAdminController(controllers.AdminCredentials{
			Email:        cfg.AdminEmail,
			Password:     cfg.AdminPassword,
			PasswordHash: cfg.AdminPasswordHash,
		}, cfg.JWTSecret, wsHub, logger),
	}

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()

	// Middleware
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.CORS(cfg.CORSOrigins))
	e.Use(echoMiddleware.Secure())
	e.Use(middleware.SecurityHeaders())
	e.Use(httpsRedirect())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "BuildItDreamz Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", healthCheck(client))

	routes.SetupRoutes(e, ctrl, cfg.JWTSecret, logger)

	// Start server
	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect", zap.Error(err))
	}
}

func healthCheck(client *mongo.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := client.Ping(ctx, nil); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": "disconnected",
			})
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	}
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(http.StatusMovedPermanently, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}

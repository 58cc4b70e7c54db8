// controllers/requirement_controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/models"
	"github.com/builditdreamz/builditdreamz_backend/websocket"
)

// RequirementController handles property requirement leads
type RequirementController struct {
	store    RequirementStore
	feed     LeadBroadcaster
	notifier LeadNotifier
	logger   *zap.Logger
}

func NewRequirementController(store RequirementStore, feed LeadBroadcaster, notifier LeadNotifier, logger *zap.Logger) *RequirementController {
	return &RequirementController{
		store:    store,
		feed:     feed,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateRequirement validates presence of every field and stores the requirement
func (rc *RequirementController) CreateRequirement(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.RequirementRequest
	if err := c.Bind(&req); err != nil {
		// parsing failures are reported like any other server error
		rc.logger.Error("error in requirement route", zap.Error(err))
		return internalServerError(c)
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing required fields",
		})
	}

	requirement := req.ToRequirement()
	if err := rc.store.Insert(ctx, requirement); err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid requirement fields",
			})
		}
		rc.logger.Error("error in requirement route", zap.Error(err))
		return internalServerError(c)
	}

	rc.logger.Info("requirement stored",
		zap.String("id", requirement.ID.Hex()),
		zap.String("transactionType", requirement.TransactionType),
	)
	rc.feed.BroadcastLead(websocket.NotificationTypeNewRequirement, requirement)
	notifyAsync(func(ctx context.Context) {
		rc.notifier.NotifyRequirement(ctx, requirement)
	})

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Requirement submitted successfully",
	})
}

// GetRequirements lists every requirement, newest first. Mounted behind AdminGuard.
func (rc *RequirementController) GetRequirements(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	requirements, err := rc.store.FindAll(ctx)
	if err != nil {
		rc.logger.Error("error fetching requirements", zap.Error(err))
		return internalServerError(c)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Requirements retrieved successfully",
		Data:    requirements,
	})
}

// notifyTimeout bounds the lead mail sent after the response
const notifyTimeout = 30 * time.Second

// notifyAsync runs fn detached from the request with its own deadline.
// Notification failures are only logged.
func notifyAsync(fn func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func internalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, models.Response{
		Status:  http.StatusInternalServerError,
		Message: "Internal Server Error",
	})
}

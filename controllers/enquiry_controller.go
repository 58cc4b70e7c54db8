package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/models"
	"github.com/builditdreamz/builditdreamz_backend/utils"
	"github.com/builditdreamz/builditdreamz_backend/websocket"
)

// EnquiryController handles interior, construction and development enquiries
type EnquiryController struct {
	store    EnquiryStore
	feed     LeadBroadcaster
	notifier LeadNotifier
	logger   *zap.Logger
}

func NewEnquiryController(store EnquiryStore, feed LeadBroadcaster, notifier LeadNotifier, logger *zap.Logger) *EnquiryController {
	return &EnquiryController{
		store:    store,
		feed:     feed,
		notifier: notifier,
		logger:   logger,
	}
}

func (ec *EnquiryController) CreateEnquiry(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var enquiry models.Enquiry
	if err := c.Bind(&enquiry); err != nil {
		ec.logger.Error("error in enquiry route", zap.Error(err))
		return internalServerError(c)
	}
	// never trust client supplied identity or timestamps
	enquiry.ID = primitive.NilObjectID
	enquiry.CreatedAt = time.Time{}

	if err := c.Validate(&enquiry); err != nil {
		return invalidEnquiry(c, utils.FirstInvalidField(err))
	}
	if field := enquiry.MissingTypeField(); field != "" {
		return invalidEnquiry(c, field)
	}

	if err := ec.store.Insert(ctx, &enquiry); err != nil {
		if errors.Is(err, models.ErrValidation) {
			return invalidEnquiry(c, "")
		}
		ec.logger.Error("error in enquiry route", zap.Error(err))
		return internalServerError(c)
	}

	ec.logger.Info("enquiry stored", zap.String("id", enquiry.ID.Hex()), zap.String("type", enquiry.Type))
	ec.feed.BroadcastLead(websocket.NotificationTypeNewEnquiry, &enquiry)
	notifyAsync(func(ctx context.Context) {
		ec.notifier.NotifyEnquiry(ctx, &enquiry)
	})

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Enquiry submitted successfully",
	})
}

// GetEnquiries lists every enquiry, newest first. Mounted behind AdminGuard.
func (ec *EnquiryController) GetEnquiries(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	enquiries, err := ec.store.FindAll(ctx)
	if err != nil {
		ec.logger.Error("error fetching enquiries", zap.Error(err))
		return internalServerError(c)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Enquiries retrieved successfully",
		Data:    enquiries,
	})
}

func invalidEnquiry(c echo.Context, field string) error {
	message := "Missing or invalid enquiry fields"
	if field != "" {
		message = "Missing or invalid field: " + field
	}
	return c.JSON(http.StatusBadRequest, models.Response{
		Status:  http.StatusBadRequest,
		Message: message,
	})
}

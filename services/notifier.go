package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/models"
)

// LeadNotifier mails a summary of each stored lead to the sales inbox
type LeadNotifier struct {
	mailer Mailer
	to     string
	logger *zap.Logger
}

// NewLeadNotifier returns a notifier. An empty to address disables it.
func NewLeadNotifier(mailer Mailer, to string, logger *zap.Logger) *LeadNotifier {
	return &LeadNotifier{mailer: mailer, to: to, logger: logger}
}

// NotifyRequirement never fails the caller; errors are logged
func (n *LeadNotifier) NotifyRequirement(ctx context.Context, r *models.Requirement) {
	body := fmt.Sprintf(
		"New property requirement\n\nName: %s\nEmail: %s\nPhone: %s\nTransaction: %s\nProperty: %s\nArea: %s %s\nLocation: %s\nBudget: %s\nDuration: %s\n",
		r.Name, r.Email, r.Phone, r.TransactionType, r.PropertyType,
		r.Area.Value, r.Area.Unit, r.Location, r.Budget, r.Duration,
	)
	n.send(ctx, "New requirement from "+r.Name, body)
}

func (n *LeadNotifier) NotifyEnquiry(ctx context.Context, e *models.Enquiry) {
	var detail string
	switch e.Type {
	case models.EnquiryTypeInterior:
		detail = "Interior work: " + strings.Join(e.InteriorTypes, ", ")
	case models.EnquiryTypeConstruction:
		detail = "Construction type: " + e.ConstructionType
	case models.EnquiryTypeDevelopment:
		detail = "Development type: " + e.DevelopmentType
	}

	body := fmt.Sprintf(
		"New %s enquiry\n\nName: %s\nEmail: %s\nPhone: %s\nArea: %g %s\nLocation: %s\nBudget: %s\n%s\nAdvance: %s\nRation: %s\n",
		e.Type, e.Name, e.Email, e.Phone, e.Area.Value, e.Area.Unit,
		e.Location, e.Budget, detail, e.Advance, e.Ration,
	)
	n.send(ctx, fmt.Sprintf("New %s enquiry from %s", e.Type, e.Name), body)
}

func (n *LeadNotifier) send(ctx context.Context, subject, body string) {
	if n == nil || n.to == "" {
		return
	}
	if err := n.mailer.Send(ctx, n.to, subject, body); err != nil {
		n.logger.Warn("lead notification not delivered", zap.String("subject", subject), zap.Error(err))
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/models"
)

func TestLeadNotifierRequirement(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewLeadNotifier(mailer, "sales@example.com", zap.NewNop())

	n.NotifyRequirement(context.Background(), &models.Requirement{
		TransactionType: "buy",
		PropertyType:    "land",
		Area:            models.RequirementArea{Value: "3", Unit: "gunta"},
		Location:        "Hyderabad",
		Name:            "A",
	})

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "sales@example.com", mailer.sent[0].to)
	assert.Equal(t, "New requirement from A", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Area: 3 gunta")
}

func TestLeadNotifierEnquiry(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewLeadNotifier(mailer, "sales@example.com", zap.NewNop())

	n.NotifyEnquiry(context.Background(), &models.Enquiry{
		Type:          models.EnquiryTypeInterior,
		Name:          "B",
		Area:          models.EnquiryArea{Value: 850.5, Unit: "sqft"},
		InteriorTypes: []string{"kitchen", "bedroom"},
	})

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "New interior enquiry from B", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Interior work: kitchen, bedroom")
	assert.Contains(t, mailer.sent[0].body, "Area: 850.5 sqft")
}

func TestLeadNotifierDisabledAndFailing(t *testing.T) {
	mailer := &fakeMailer{}
	NewLeadNotifier(mailer, "", zap.NewNop()).NotifyRequirement(context.Background(), &models.Requirement{})
	assert.Empty(t, mailer.sent)

	var nilNotifier *LeadNotifier
	nilNotifier.NotifyEnquiry(context.Background(), &models.Enquiry{})

	failing := &fakeMailer{err: errors.New("relay down")}
	assert.NotPanics(t, func() {
		NewLeadNotifier(failing, "sales@example.com", zap.NewNop()).NotifyRequirement(context.Background(), &models.Requirement{})
	})
}

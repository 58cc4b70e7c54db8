package controllers

import (
	"context"

	"github.com/builditdreamz/builditdreamz_backend/models"
)

// RequirementStore persists property requirements
type RequirementStore interface {
	Insert(ctx context.Context, req *models.Requirement) error
	FindAll(ctx context.Context) ([]models.Requirement, error)
}

// EnquiryStore persists service enquiries
type EnquiryStore interface {
	Insert(ctx context.Context, enquiry *models.Enquiry) error
	FindAll(ctx context.Context) ([]models.Enquiry, error)
}

// PostStore persists blog posts
type PostStore interface {
	Insert(ctx context.Context, post *models.Post) error
	FindAll(ctx context.Context) ([]models.Post, error)
}

// PostCache caches the blog listing. Set is a no-op when an Invalidate ran
// after version was read.
type PostCache interface {
	Get(ctx context.Context) ([]models.Post, bool, error)
	Version(ctx context.Context) (int64, error)
	Set(ctx context.Context, version int64, posts []models.Post) error
	Invalidate(ctx context.Context) error
}

// LeadBroadcaster pushes new leads to connected admins
type LeadBroadcaster interface {
	BroadcastLead(kind string, lead interface{})
}

// LeadNotifier mails new leads to the sales inbox
type LeadNotifier interface {
	NotifyRequirement(ctx context.Context, r *models.Requirement)
	NotifyEnquiry(ctx context.Context, e *models.Enquiry)
}

// OTPChallenges issues and checks email verification codes
type OTPChallenges interface {
	Send(ctx context.Context, email string) error
	Verify(email, code string) bool
	IsVerified(email string) bool
}

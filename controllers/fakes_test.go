package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/builditdreamz/builditdreamz_backend/models"
	"github.com/builditdreamz/builditdreamz_backend/utils"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator()
	return e
}

func doJSON(e *echo.Echo, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

type fakeRequirementStore struct {
	mu        sync.Mutex
	docs      []models.Requirement
	insertErr error
	findErr   error
	findCalls int
}

func (f *fakeRequirementStore) Insert(_ context.Context, req *models.Requirement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	req.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *req)
	return nil
}

func (f *fakeRequirementStore) FindAll(context.Context) ([]models.Requirement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]models.Requirement, 0, len(f.docs))
	for i := len(f.docs) - 1; i >= 0; i-- {
		out = append(out, f.docs[i])
	}
	return out, nil
}

func (f *fakeRequirementStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

type fakeEnquiryStore struct {
	docs      []models.Enquiry
	insertErr error
	findErr   error
	findCalls int
}

func (f *fakeEnquiryStore) Insert(_ context.Context, e *models.Enquiry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	e.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *e)
	return nil
}

func (f *fakeEnquiryStore) FindAll(context.Context) ([]models.Enquiry, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.docs, nil
}

type fakePostStore struct {
	docs      []models.Post
	insertErr error
	findErr   error
	findCalls int
	onFindAll func()
}

func (f *fakePostStore) Insert(_ context.Context, p *models.Post) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	p.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *p)
	return nil
}

func (f *fakePostStore) FindAll(context.Context) ([]models.Post, error) {
	f.findCalls++
	if f.onFindAll != nil {
		f.onFindAll()
	}
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.docs, nil
}

type fakeCache struct {
	posts       []models.Post
	hit         bool
	getErr      error
	sets        int
	invalidated int
	version     int64
}

func (f *fakeCache) Get(context.Context) ([]models.Post, bool, error) {
	return f.posts, f.hit, f.getErr
}

func (f *fakeCache) Version(context.Context) (int64, error) {
	return f.version, nil
}

func (f *fakeCache) Set(_ context.Context, version int64, posts []models.Post) error {
	if version != f.version {
		return nil
	}
	f.sets++
	f.posts = posts
	return nil
}

func (f *fakeCache) Invalidate(context.Context) error {
	f.invalidated++
	f.version++
	f.hit = false
	return nil
}

type broadcast struct {
	kind string
	lead interface{}
}

type fakeFeed struct {
	mu   sync.Mutex
	sent []broadcast
}

func (f *fakeFeed) BroadcastLead(kind string, lead interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, broadcast{kind: kind, lead: lead})
}

// fakeNotifier is called from a detached goroutine; read it through the accessors
type fakeNotifier struct {
	mu           sync.Mutex
	requirements []*models.Requirement
	enquiries    []*models.Enquiry
	block        chan struct{}
}

func (f *fakeNotifier) NotifyRequirement(_ context.Context, r *models.Requirement) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requirements = append(f.requirements, r)
}

func (f *fakeNotifier) NotifyEnquiry(_ context.Context, e *models.Enquiry) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enquiries = append(f.enquiries, e)
}

func (f *fakeNotifier) requirementCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requirements)
}

func (f *fakeNotifier) enquiryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.enquiries)
}

type fakeRelay struct {
	sent map[string]string
	err  error
}

func (f *fakeRelay) SendOTP(_ context.Context, email, code string) error {
	if f.err != nil {
		return f.err
	}
	if f.sent == nil {
		f.sent = map[string]string{}
	}
	f.sent[email] = code
	return nil
}

type fakeChallenges struct {
	sendErr  error
	sent     []string
	codes    map[string]string
	verified map[string]bool
}

func newFakeChallenges() *fakeChallenges {
	return &fakeChallenges{codes: map[string]string{}, verified: map[string]bool{}}
}

func (f *fakeChallenges) Send(_ context.Context, email string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, email)
	return nil
}

func (f *fakeChallenges) Verify(email, code string) bool {
	ok := f.codes[email] != "" && f.codes[email] == code
	f.verified[email] = ok
	return ok
}

func (f *fakeChallenges) IsVerified(email string) bool {
	return f.verified[email]
}

package services

import (
	"context"
	"errors"
	"sync"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeRelay struct {
	mu    sync.Mutex
	codes []string
	err   error
}

func (f *fakeRelay) SendOTP(_ context.Context, _ string, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.codes = append(f.codes, code)
	return nil
}

// sequence returns a generator yielding codes in order
func sequence(codes ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(codes) {
			return "", errors.New("sequence exhausted")
		}
		code := codes[i]
		i++
		return code, nil
	}
}

// blockingRelay holds every SendOTP until release is closed
type blockingRelay struct {
	started chan string
	release chan struct{}
}

func newBlockingRelay() *blockingRelay {
	return &blockingRelay{started: make(chan string, 1), release: make(chan struct{})}
}

func (b *blockingRelay) SendOTP(ctx context.Context, email, _ string) error {
	b.started <- email
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

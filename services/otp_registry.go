package services

import (
	"context"
	"strings"
	"sync"
)

// OTPRegistry holds one in-memory Challenge per email address. Nothing is
// persisted; a restart forgets every challenge.
type OTPRegistry struct {
	mu           sync.Mutex
	challenges   map[string]*Challenge
	relay        OTPRelay
	newChallenge func(email string) *Challenge
}

func NewOTPRegistry(relay OTPRelay) *OTPRegistry {
	return &OTPRegistry{
		challenges:   make(map[string]*Challenge),
		relay:        relay,
		newChallenge: NewChallenge,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// challenge returns the challenge for email, creating it when missing. Callers hold mu.
// Only Send creates challenges.
func (r *OTPRegistry) challenge(email string) *Challenge {
	key := normalizeEmail(email)
	c, ok := r.challenges[key]
	if !ok {
		c = r.newChallenge(key)
		r.challenges[key] = c
	}
	return c
}

// Send issues a new code for email and relays it. The lock is not held
// while the relay runs, so a slow mail server only delays this caller.
func (r *OTPRegistry) Send(ctx context.Context, email string) error {
	r.mu.Lock()
	c := r.challenge(email)
	code, err := c.record()
	r.mu.Unlock()
	if err != nil {
		return err
	}

	if err := r.relay.SendOTP(ctx, c.Email, code); err != nil {
		return err
	}

	r.mu.Lock()
	c.markSent(code)
	r.mu.Unlock()
	return nil
}

// Verify checks code against the latest code issued for email. An email
// that was never sent a code is not recorded.
func (r *OTPRegistry) Verify(email, code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.challenges[normalizeEmail(email)]
	if !ok {
		return false
	}
	return c.Verify(code)
}

// IsVerified reports whether email completed a challenge
func (r *OTPRegistry) IsVerified(email string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.challenges[normalizeEmail(email)]
	return ok && c.State() == StateVerified
}

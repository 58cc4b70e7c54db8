package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in an issued code
const OTPLength = 6

const (
	otpSubject  = "Email Verification from BuildItDreamz"
	otpBodyText = "Your OTP is: %s"
)

// ChallengeState is where an email verification stands
type ChallengeState int

const (
	StateNotSent ChallengeState = iota
	StateSent
	StateVerified
)

func (s ChallengeState) String() string {
	switch s {
	case StateSent:
		return "SENT"
	case StateVerified:
		return "VERIFIED"
	default:
		return "NOT_SENT"
	}
}

// OTPRelay delivers a code to an email address
type OTPRelay interface {
	SendOTP(ctx context.Context, email, code string) error
}

// MailOTPRelay relays codes through a Mailer
type MailOTPRelay struct {
	mailer Mailer
}

func NewMailOTPRelay(mailer Mailer) *MailOTPRelay {
	return &MailOTPRelay{mailer: mailer}
}

func (r *MailOTPRelay) SendOTP(ctx context.Context, email, code string) error {
	return r.mailer.Send(ctx, email, otpSubject, fmt.Sprintf(otpBodyText, code))
}

// GenerateCode returns length independent uniformly drawn digits.
// Leading zeros and repeats are allowed.
func GenerateCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

// Challenge is the verification state for one email. Every issued code is
// kept but only the last one verifies. There is no expiry and no attempt limit.
// A Challenge is not safe for concurrent use; OTPRegistry serializes access.
type Challenge struct {
	Email    string
	codes    []string
	state    ChallengeState
	generate func() (string, error)

	// latestVerified is set when the newest code has been verified
	latestVerified bool
}

func NewChallenge(email string) *Challenge {
	return &Challenge{
		Email: email,
		generate: func() (string, error) {
			return GenerateCode(OTPLength)
		},
	}
}

func (c *Challenge) State() ChallengeState {
	return c.state
}

// Issued returns how many codes have been generated so far
func (c *Challenge) Issued() int {
	return len(c.codes)
}

// Issue generates a fresh code, records it and hands it to the relay.
// The code stays recorded even when the relay fails; the state only moves
// to SENT once the relay accepted it.
func (c *Challenge) Issue(ctx context.Context, relay OTPRelay) (string, error) {
	code, err := c.record()
	if err != nil {
		return "", err
	}
	if err := relay.SendOTP(ctx, c.Email, code); err != nil {
		return code, err
	}
	c.markSent(code)
	return code, nil
}

// record generates a code and appends it to the issued list
func (c *Challenge) record() (string, error) {
	code, err := c.generate()
	if err != nil {
		return "", err
	}
	c.codes = append(c.codes, code)
	c.latestVerified = false
	return code, nil
}

// markSent moves to SENT after the relay accepted code. A newer code or a
// verification of code that landed while it was in flight wins.
func (c *Challenge) markSent(code string) {
	if c.latestVerified || c.codes[len(c.codes)-1] != code {
		return
	}
	c.state = StateSent
}

// Verify compares input with the most recently issued code. A mismatch
// resets the challenge to NOT_SENT.
func (c *Challenge) Verify(input string) bool {
	if len(c.codes) > 0 && input == c.codes[len(c.codes)-1] {
		c.state = StateVerified
		c.latestVerified = true
		return true
	}
	c.state = StateNotSent
	c.latestVerified = false
	return false
}

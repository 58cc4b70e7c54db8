package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(relay OTPRelay, codes ...string) *OTPRegistry {
	r := NewOTPRegistry(relay)
	next := sequence(codes...)
	var mu sync.Mutex
	r.newChallenge = func(email string) *Challenge {
		c := NewChallenge(email)
		c.generate = func() (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return next()
		}
		return c
	}
	return r
}

func TestOTPRegistrySendAndVerify(t *testing.T) {
	relay := &fakeRelay{}
	r := newTestRegistry(relay, "482193", "120045")
	ctx := context.Background()

	require.NoError(t, r.Send(ctx, "A@X.com"))
	require.NoError(t, r.Send(ctx, "a@x.com "))
	assert.Equal(t, []string{"482193", "120045"}, relay.codes)

	assert.False(t, r.IsVerified("a@x.com"))
	assert.False(t, r.Verify("a@x.com", "482193"))
	assert.True(t, r.Verify("a@x.com", "120045"))
	assert.True(t, r.IsVerified("A@x.COM"))
}

func TestOTPRegistryMismatchResets(t *testing.T) {
	r := newTestRegistry(&fakeRelay{}, "482193")
	require.NoError(t, r.Send(context.Background(), "a@x.com"))

	assert.True(t, r.Verify("a@x.com", "482193"))
	assert.True(t, r.IsVerified("a@x.com"))

	assert.False(t, r.Verify("a@x.com", "000000"))
	assert.False(t, r.IsVerified("a@x.com"))
}

func TestOTPRegistryEmailsAreIndependent(t *testing.T) {
	r := newTestRegistry(&fakeRelay{}, "111111", "222222")
	ctx := context.Background()
	require.NoError(t, r.Send(ctx, "a@x.com"))
	require.NoError(t, r.Send(ctx, "b@x.com"))

	assert.False(t, r.Verify("b@x.com", "111111"))
	assert.True(t, r.Verify("a@x.com", "111111"))
	assert.True(t, r.Verify("b@x.com", "222222"))
}

func TestOTPRegistryUnknownEmail(t *testing.T) {
	r := NewOTPRegistry(&fakeRelay{})

	assert.False(t, r.IsVerified("nobody@x.com"))
	assert.False(t, r.Verify("nobody@x.com", "123456"))
}

func TestOTPRegistryVerifyUnknownEmailStoresNothing(t *testing.T) {
	r := NewOTPRegistry(&fakeRelay{})

	for i := 0; i < 1000; i++ {
		assert.False(t, r.Verify(fmt.Sprintf("user%d@x.com", i), "123456"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Empty(t, r.challenges)
}

func TestOTPRegistrySlowRelayDoesNotBlockOtherEmails(t *testing.T) {
	r := newTestRegistry(&fakeRelay{}, "111111", "222222")
	require.NoError(t, r.Send(context.Background(), "other@x.com"))

	relay := newBlockingRelay()
	r.relay = relay
	sendDone := make(chan error, 1)
	go func() { sendDone <- r.Send(context.Background(), "slow@x.com") }()
	assert.Equal(t, "slow@x.com", <-relay.started)

	checked := make(chan bool, 1)
	go func() {
		r.IsVerified("other@x.com")
		checked <- r.Verify("other@x.com", "111111")
	}()

	select {
	case ok := <-checked:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("verification waited on another email's relay")
	}

	close(relay.release)
	require.NoError(t, <-sendDone)
}

func TestOTPRegistryVerifiedWhileRelayInFlight(t *testing.T) {
	relay := newBlockingRelay()
	r := newTestRegistry(relay, "482193")

	sendDone := make(chan error, 1)
	go func() { sendDone <- r.Send(context.Background(), "a@x.com") }()
	<-relay.started

	assert.True(t, r.Verify("a@x.com", "482193"))
	close(relay.release)
	require.NoError(t, <-sendDone)

	assert.True(t, r.IsVerified("a@x.com"))
}

func TestOTPRegistryRelayError(t *testing.T) {
	relayErr := errors.New("relay down")
	r := newTestRegistry(&fakeRelay{err: relayErr}, "482193")

	err := r.Send(context.Background(), "a@x.com")

	assert.ErrorIs(t, err, relayErr)
	assert.False(t, r.IsVerified("a@x.com"))
}

func TestOTPRegistryConcurrentUse(t *testing.T) {
	r := NewOTPRegistry(&fakeRelay{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Send(context.Background(), "a@x.com")
			r.Verify("a@x.com", "000000")
			r.IsVerified("a@x.com")
		}()
	}
	wg.Wait()
}

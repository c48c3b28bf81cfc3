package otp_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/otp"
)

func TestGenerateHOTP(t *testing.T) {
	t.Parallel()

	// RFC 4226 appendix D.
	key := []byte("12345678901234567890")
	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}
	for counter, code := range want {
		assert.Equal(t, code, otp.GenerateHOTP(key, uint64(counter), otp.CodeDigits), "counter %d", counter)
	}

	assert.Len(t, otp.GenerateHOTP(key, 0, 8), 8)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSimulated_DemoCode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := otp.NewSimulated(otp.WithDemoCode("123456"))

	_, err := svc.Verify(ctx, "9876543210", "123456")
	assert.ErrorIs(t, err, otp.ErrNotSent)

	require.NoError(t, svc.Send(ctx, "9876543210"))

	ok, err := svc.Verify(ctx, "9876543210", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, "9876543210", "654321")
	require.NoError(t, err)
	assert.False(t, ok)

	code, found := svc.LastCode("9876543210")
	assert.True(t, found)
	assert.Equal(t, "123456", code)
}

func TestSimulated_Cooldown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)}
	svc := otp.NewSimulated(
		otp.WithDemoCode("123456"),
		otp.WithCooldown(30*time.Second),
		otp.WithClock(clock.Now),
	)

	require.NoError(t, svc.Send(ctx, "9876543210"))

	clock.Advance(10 * time.Second)
	err := svc.Send(ctx, "9876543210")
	require.ErrorIs(t, err, otp.ErrCooldown)

	var cd *otp.CooldownError
	require.True(t, errors.As(err, &cd))
	assert.Equal(t, 20, cd.Seconds())
	assert.Equal(t, 20*time.Second, svc.CooldownRemaining("9876543210"))

	assert.NoError(t, svc.Send(ctx, "9123456789"), "cooldown is per number")

	clock.Advance(20 * time.Second)
	assert.NoError(t, svc.Send(ctx, "9876543210"))
	assert.Zero(t, svc.CooldownRemaining("0000000000"))
}

func TestSimulated_GeneratedCodes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	key := []byte("12345678901234567890")
	svc := otp.NewSimulated(otp.WithKey(key))

	require.NoError(t, svc.Send(ctx, "9876543210"))
	first, _ := svc.LastCode("9876543210")
	assert.Equal(t, "755224", first)

	require.NoError(t, svc.Send(ctx, "9876543210"))
	second, _ := svc.LastCode("9876543210")
	assert.Equal(t, "287082", second)

	ok, err := svc.Verify(ctx, "9876543210", first)
	require.NoError(t, err)
	assert.False(t, ok, "a resend invalidates the previous code")

	ok, err = svc.Verify(ctx, "9876543210", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSimulated_Delay(t *testing.T) {
	t.Parallel()

	svc := otp.NewSimulated(otp.WithDemoCode("123456"), otp.WithDelay(time.Minute))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := svc.Send(ctx, "9876543210")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, found := svc.LastCode("9876543210")
	assert.False(t, found, "cancelled send must not register a code")
}

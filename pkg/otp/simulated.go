package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"
)

// Service sends codes to a mobile number and checks them.
type Service interface {
	Send(ctx context.Context, mobile string) error
	Verify(ctx context.Context, mobile, code string) (bool, error)
}

type pending struct {
	code    string
	sentAt  time.Time
	counter uint64
}

// Simulated delivers nothing; it remembers the code it would have sent.
type Simulated struct {
	demoCode string
	delay    time.Duration
	cooldown time.Duration
	now      func() time.Time
	key      []byte

	mu      sync.Mutex
	pending map[string]*pending
}

// Option configures a Simulated service.
type Option func(*Simulated)

// WithDemoCode makes every send issue code. An empty code switches to
// generated HOTP codes.
func WithDemoCode(code string) Option {
	return func(s *Simulated) {
		s.demoCode = code
	}
}

// WithDelay sets the simulated delivery latency.
func WithDelay(d time.Duration) Option {
	return func(s *Simulated) {
		s.delay = d
	}
}

// WithCooldown sets the minimum interval between sends to the same number.
func WithCooldown(d time.Duration) Option {
	return func(s *Simulated) {
		s.cooldown = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Simulated) {
		s.now = now
	}
}

// WithKey sets the HOTP key used when no demo code is configured.
func WithKey(key []byte) Option {
	return func(s *Simulated) {
		s.key = key
	}
}

// NewSimulated returns a simulated service. Without a key option a random
// 20-byte key is drawn.
func NewSimulated(opts ...Option) *Simulated {
	s := &Simulated{
		now:     time.Now,
		pending: make(map[string]*pending),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.demoCode == "" && len(s.key) == 0 {
		s.key = make([]byte, 20)
		if _, err := rand.Read(s.key); err != nil {
			panic(fmt.Sprintf("otp: failed to generate key: %v", err))
		}
	}
	return s
}

// Send issues a code to mobile. A repeat send within the cooldown returns a
// *CooldownError.
func (s *Simulated) Send(ctx context.Context, mobile string) error {
	s.mu.Lock()
	p, ok := s.pending[mobile]
	if ok && s.cooldown > 0 {
		if elapsed := s.now().Sub(p.sentAt); elapsed < s.cooldown {
			s.mu.Unlock()
			return &CooldownError{Remaining: s.cooldown - elapsed}
		}
	}
	s.mu.Unlock()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := &pending{sentAt: s.now()}
	if p, ok := s.pending[mobile]; ok {
		next.counter = p.counter + 1
	}
	next.code = s.demoCode
	if next.code == "" {
		next.code = GenerateHOTP(s.key, next.counter, CodeDigits)
	}
	s.pending[mobile] = next
	return nil
}

// Verify reports whether code matches the last code sent to mobile.
func (s *Simulated) Verify(ctx context.Context, mobile, code string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[mobile]
	if !ok {
		return false, ErrNotSent
	}
	return subtle.ConstantTimeCompare([]byte(p.code), []byte(code)) == 1, nil
}

// LastCode returns the code most recently sent to mobile.
func (s *Simulated) LastCode(mobile string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[mobile]
	if !ok {
		return "", false
	}
	return p.code, true
}

// CooldownRemaining returns how long until mobile may be sent another code.
func (s *Simulated) CooldownRemaining(mobile string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[mobile]
	if !ok {
		return 0
	}
	if left := s.cooldown - s.now().Sub(p.sentAt); left > 0 {
		return left
	}
	return 0
}

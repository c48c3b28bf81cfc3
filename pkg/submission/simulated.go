package submission

import (
	"context"
	"fmt"
	"time"
)

// Simulated is a Transport that waits for Delay and then acknowledges the
// envelope. It never rejects.
type Simulated struct {
	Delay time.Duration
	Now   func() time.Time
}

// NewSimulated returns a simulated transport with the given latency.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay, Now: time.Now}
}

func (s *Simulated) Submit(ctx context.Context, env Envelope) (Ack, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Ack{}, fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Ack{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Ack{
		EnvelopeID: env.ID,
		Reference:  Reference(env.Form, env.ID),
		ReceivedAt: now(),
	}, nil
}

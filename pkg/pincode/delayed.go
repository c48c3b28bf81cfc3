package pincode

import (
	"context"
	"time"
)

type delayed struct {
	next  Resolver
	delay time.Duration
}

// Delayed wraps next so every lookup waits for delay first, the way a remote
// postal directory would. The wait is abandoned when ctx is done.
func Delayed(next Resolver, delay time.Duration) Resolver {
	if delay <= 0 {
		return next
	}
	return &delayed{next: next, delay: delay}
}

func (d *delayed) Resolve(ctx context.Context, code string) (Location, error) {
	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Location{}, ctx.Err()
	case <-timer.C:
	}
	return d.next.Resolve(ctx, code)
}

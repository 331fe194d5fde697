package commands

import (
	"context"
	"errors"
	"time"

	"fleet/internal/pkg/errs"
)

// RetryPolicy bounds how often a handler re-runs a transaction that lost a race.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   50 * time.Millisecond,
		MaxDelay:    time.Second,
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts < 1 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.BaseDelay < 0 {
		p.BaseDelay = 0
	}
	if p.MaxDelay < p.BaseDelay {
		p.MaxDelay = p.BaseDelay
	}
	return p
}

// retryOnConflict runs fn until it succeeds, fails with anything but errs.ErrConflict,
// or the attempts are used up. The last error is returned.
func retryOnConflict(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) error) error {
	p := policy.normalized()

	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || !errors.Is(err, errs.ErrConflict) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}
		if !sleepWithContext(ctx, backoff(p.BaseDelay, p.MaxDelay, attempt)) {
			return errors.Join(err, ctx.Err())
		}
	}

	return err
}

func backoff(base, maxDelay time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > maxDelay || d < 0 {
		return maxDelay
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

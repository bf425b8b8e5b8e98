package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/groomer/internal/pkg/logger"
)

// ErrExhausted wraps the last error once every attempt has failed
var ErrExhausted = errors.New("retries exhausted")

// Policy controls how a failed backend read is repeated
type Policy struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // wait before the first retry
	MaxDelay   time.Duration // cap for any single wait
	Multiplier float64       // growth factor between waits
	Jitter     float64       // fraction of the wait added at random, 0 disables
	Retryable  func(error) bool
}

// DefaultPolicy retries twice, starting at 200ms
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 2,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2,
		Jitter:     0.1,
	}
}

// Delay returns the wait before retry number attempt (0 based), without jitter
func (p Policy) Delay(attempt int) time.Duration {
	multiplier := p.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	delay := float64(p.BaseDelay) * math.Pow(multiplier, float64(attempt))
	if p.MaxDelay > 0 && delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}
	return time.Duration(delay)
}

// Retrier repeats a call with exponential backoff
type Retrier struct {
	policy Policy
	logger *logger.ZapLogger
	jitter func() float64
}

// New creates a retrier for policy. A nil Retryable retries every error.
func New(policy Policy, l *logger.ZapLogger) *Retrier {
	if policy.Retryable == nil {
		policy.Retryable = func(error) bool { return true }
	}
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Retrier{policy: policy, logger: l, jitter: rand.Float64}
}

// Execute calls fn until it succeeds, fails with a non-retryable error,
// ctx ends or the policy runs out of retries.
func (r *Retrier) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		switch {
		case lastErr == nil:
			if attempt > 0 {
				r.logger.Info("Request succeeded after retry", logger.Int("attempt", attempt+1))
			}
			return nil
		case !r.policy.Retryable(lastErr):
			return lastErr
		case attempt >= r.policy.MaxRetries:
			return r.exhausted(attempt+1, lastErr)
		}

		wait := r.wait(attempt)
		r.logger.Debug("Request failed, backing off",
			logger.Err(lastErr),
			logger.Int("attempt", attempt+1),
			logger.Duration("wait", wait))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *Retrier) wait(attempt int) time.Duration {
	delay := r.policy.Delay(attempt)
	if r.policy.Jitter > 0 {
		delay += time.Duration(float64(delay) * r.policy.Jitter * r.jitter())
	}
	return delay
}

func (r *Retrier) exhausted(attempts int, lastErr error) error {
	if attempts == 1 {
		return lastErr
	}
	r.logger.Warn("Request failed on every attempt",
		logger.Err(lastErr),
		logger.Int("attempts", attempts))
	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempts, lastErr)
}

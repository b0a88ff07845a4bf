package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/supchaser/bookmark_annotator/internal/utils/errs"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"go.uber.org/zap"
)

const maxBackoff = 32 * time.Second

// RateLimitError signals that a provider rejected a call because of rate
// limiting and told us when the limit resets.
type RateLimitError struct {
	ResetAt time.Time
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "rate limit exceeded"
}

// Executor runs external calls with retries, exponential backoff and
// rate-limit-aware waiting. The clock and sleep functions are injectable
// so tests can run without real delays.
type Executor struct {
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

func CreateExecutor() *Executor {
	return &Executor{
		sleep: sleepCtx,
		now:   time.Now,
	}
}

// CreateExecutorWithClock builds an executor with a custom clock and sleeper.
func CreateExecutorWithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) *Executor {
	return &Executor{
		sleep: sleep,
		now:   now,
	}
}

// Do invokes op up to maxAttempts times.
//
// A *RateLimitError makes the executor wait max(ResetAt-now, 1s) and retry
// the same operation; the wait does not feed the backoff sequence but the
// attempt is still counted against maxAttempts. Any other error backs off
// min(2^attempt, 32s) before the next try. When attempts run out the last
// cause is returned wrapped in errs.ErrExhaustedRetries.
func (e *Executor) Do(ctx context.Context, name string, maxAttempts int, op func() error) error {
	const funcName = "Executor.Do"

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		logger.Debug("calling external operation",
			zap.String("function", funcName),
			zap.String("operation", name),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", maxAttempts),
		)

		err := op()
		if err == nil {
			logger.Debug("operation succeeded",
				zap.String("function", funcName),
				zap.String("operation", name),
				zap.Int("attempt", attempt+1),
			)
			return nil
		}
		lastErr = err

		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			wait := rateErr.ResetAt.Sub(e.now())
			if wait < time.Second {
				wait = time.Second
			}
			logger.Warn("rate limit hit, waiting for reset",
				zap.String("function", funcName),
				zap.String("operation", name),
				zap.Duration("wait", wait),
				zap.Int("attempt", attempt+1),
			)
			if err := e.sleep(ctx, wait); err != nil {
				return fmt.Errorf("%w: %w", errs.ErrExhaustedRetries, err)
			}
			continue
		}

		if attempt == maxAttempts-1 {
			break
		}

		wait := backoff(attempt)
		logger.Warn("operation failed, retrying",
			zap.String("function", funcName),
			zap.String("operation", name),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", maxAttempts),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
		if err := e.sleep(ctx, wait); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrExhaustedRetries, err)
		}
	}

	logger.Error("operation failed after all attempts",
		zap.String("function", funcName),
		zap.String("operation", name),
		zap.Int("max_attempts", maxAttempts),
		zap.Error(lastErr),
	)
	return fmt.Errorf("%w: %w", errs.ErrExhaustedRetries, lastErr)
}

// backoff returns min(2^attempt, 32) seconds for a zero-based attempt.
func backoff(attempt int) time.Duration {
	wait := time.Second << uint(attempt)
	if wait > maxBackoff || wait <= 0 {
		return maxBackoff
	}
	return wait
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

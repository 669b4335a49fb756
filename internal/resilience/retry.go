package resilience

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"
)

// RetryConfig holds configuration for retry logic
type RetryConfig struct {
	MaxAttempts       int           // Total number of attempts, including the first
	InitialBackoff    time.Duration // Delay before the first retry
	MaxBackoff        time.Duration // Upper bound on any single delay
	BackoffMultiplier float64       // Growth factor applied after each delay
	Jitter            bool          // Whether to add up to 25% jitter to each delay
}

// DefaultRetryConfig returns the retry policy used for synthesis calls:
// two attempts total with a fixed one-second delay in between.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:       2,
		InitialBackoff:    time.Second,
		MaxBackoff:        5 * time.Second,
		BackoffMultiplier: 1.0,
		Jitter:            false,
	}
}

// RetryableFunc is a function that can be retried
type RetryableFunc func(ctx context.Context) error

// IsRetryableError decides whether an error is worth another attempt
type IsRetryableError func(error) bool

// Retry executes fn up to config.MaxAttempts times, sleeping between
// attempts. A nil isRetryable treats every error as retryable. The
// inter-attempt sleep honors context cancellation; when the context ends
// mid-delay the last attempt's error is returned rather than blocking.
func Retry(ctx context.Context, fn RetryableFunc, config *RetryConfig, isRetryable IsRetryableError) error {
	if config == nil {
		config = DefaultRetryConfig()
	}

	var lastErr error
	backoff := config.InitialBackoff

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if isRetryable != nil && !isRetryable(err) {
			return err
		}

		// Don't sleep after the last attempt
		if attempt < config.MaxAttempts-1 {
			sleep := backoff
			if config.Jitter {
				sleep += time.Duration(float64(sleep) * 0.25 * rand.Float64())
			}
			if sleep > config.MaxBackoff {
				sleep = config.MaxBackoff
			}

			select {
			case <-time.After(sleep):
			case <-ctx.Done():
				return lastErr
			}

			backoff = time.Duration(float64(backoff) * config.BackoffMultiplier)
			if backoff > config.MaxBackoff {
				backoff = config.MaxBackoff
			}
		}
	}

	return lastErr
}

var networkErrorMarkers = []string{
	"connection refused",
	"connection reset",
	"connection closed",
	"transport is closing",
	"unavailable",
	"network is unreachable",
	"no route to host",
	"no such host",
}

var timeoutErrorMarkers = []string{
	"deadline exceeded",
	"timeout",
	"timed out",
	"i/o timeout",
}

// IsNetworkError reports whether an error looks like a connection-level
// failure reaching the upstream service.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err.Error(), networkErrorMarkers)
}

// IsTimeoutError reports whether an error was caused by an expired
// deadline, either a context timeout or a transport-level one.
func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return containsAny(err.Error(), timeoutErrorMarkers)
}

// containsAny checks if a string contains any of the substrings,
// ignoring case. gRPC and HTTP clients capitalize parts of their error
// text ("Unavailable", "Timeout") while the markers are lowercase.
func containsAny(s string, substrings []string) bool {
	s = strings.ToLower(s)
	for _, substr := range substrings {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

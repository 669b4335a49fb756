package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_Success(t *testing.T) {
	attempts := 0
	err := Retry(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	}, DefaultRetryConfig(), nil)

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", attempts)
	}
}

func TestRetry_FailureThenSuccess(t *testing.T) {
	config := &RetryConfig{
		MaxAttempts:       2,
		InitialBackoff:    10 * time.Millisecond,
		MaxBackoff:        100 * time.Millisecond,
		BackoffMultiplier: 1.0,
	}

	attempts := 0
	start := time.Now()
	err := Retry(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return errors.New("temporary error")
		}
		return nil
	}, config, nil)
	elapsed := time.Since(start)

	if err != nil {
		t.Errorf("Expected no error after retry, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
	if elapsed < 10*time.Millisecond {
		t.Errorf("Expected at least one inter-attempt delay, elapsed %v", elapsed)
	}
}

func TestRetry_MaxAttempts(t *testing.T) {
	config := &RetryConfig{
		MaxAttempts:       2,
		InitialBackoff:    10 * time.Millisecond,
		MaxBackoff:        100 * time.Millisecond,
		BackoffMultiplier: 1.0,
	}

	attempts := 0
	lastErr := errors.New("persistent error")
	err := Retry(context.Background(), func(ctx context.Context) error {
		attempts++
		return lastErr
	}, config, nil)

	if !errors.Is(err, lastErr) {
		t.Errorf("Expected last attempt's error, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected exactly 2 attempts, got %d", attempts)
	}
}

func TestRetry_NilConfigUsesDefault(t *testing.T) {
	attempts := 0
	_ = Retry(context.Background(), func(ctx context.Context) error {
		attempts++
		return errors.New("always fails")
	}, nil, nil)

	if attempts != 2 {
		t.Errorf("Expected default config's 2 attempts, got %d", attempts)
	}
}

func TestRetry_NonRetryableError(t *testing.T) {
	config := &RetryConfig{
		MaxAttempts:       3,
		InitialBackoff:    10 * time.Millisecond,
		MaxBackoff:        100 * time.Millisecond,
		BackoffMultiplier: 1.0,
	}

	permanent := errors.New("permanent error")
	attempts := 0
	err := Retry(context.Background(), func(ctx context.Context) error {
		attempts++
		return permanent
	}, config, func(err error) bool {
		return false
	})

	if !errors.Is(err, permanent) {
		t.Errorf("Expected the permanent error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt for non-retryable error, got %d", attempts)
	}
}

func TestRetry_ContextCancelledDuringDelay(t *testing.T) {
	config := &RetryConfig{
		MaxAttempts:       2,
		InitialBackoff:    5 * time.Second,
		MaxBackoff:        5 * time.Second,
		BackoffMultiplier: 1.0,
	}

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	firstErr := errors.New("first failure")

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := Retry(ctx, func(ctx context.Context) error {
		attempts++
		return firstErr
	}, config, nil)
	elapsed := time.Since(start)

	if !errors.Is(err, firstErr) {
		t.Errorf("Expected last attempt's error after cancellation, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt before cancellation, got %d", attempts)
	}
	if elapsed >= time.Second {
		t.Errorf("Expected cancellation to cut the delay short, elapsed %v", elapsed)
	}
}

func TestRetry_ContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Retry(ctx, func(ctx context.Context) error {
		attempts++
		return nil
	}, DefaultRetryConfig(), nil)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if attempts != 0 {
		t.Errorf("Expected 0 attempts on a cancelled context, got %d", attempts)
	}
}

func TestIsNetworkError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"no such host", errors.New("lookup api.example.com: no such host"), true},
		{"unavailable", errors.New("rpc error: code = Unavailable"), true},
		{"capitalized refused", errors.New("dial tcp: Connection Refused"), true},
		{"other", errors.New("invalid argument"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNetworkError(tt.err); got != tt.expected {
				t.Errorf("IsNetworkError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestIsTimeoutError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", errors.Join(errors.New("attempt failed"), context.DeadlineExceeded), true},
		{"io timeout", errors.New("read tcp: i/o timeout"), true},
		{"timed out", errors.New("request timed out"), true},
		{"capitalized timeout", errors.New("Post \"https://generativelanguage.googleapis.com\": Timeout exceeded"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeoutError(tt.err); got != tt.expected {
				t.Errorf("IsTimeoutError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errNetwork = errors.New("network error")

func TestRetryableError(t *testing.T) {
	// Wrapped errors preserve the message and unwrap to the cause
	err := &RetryableError{Err: errNetwork}
	if err.Error() != errNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if !errors.Is(err, errNetwork) {
		t.Error("RetryableError should unwrap to the cause")
	}
	if !isRetryable(err) {
		t.Error("isRetryable should return true for wrapped error")
	}

	// Non-wrapped errors are not retryable
	if isRetryable(errNetwork) {
		t.Error("isRetryable should return false for unwrapped error")
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return errNetwork
	})
	if err != errNetwork {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		if calls < 2 {
			return &RetryableError{Err: errNetwork}
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}

	// Exhausted attempts return the last error
	calls = 0
	wrapped := &RetryableError{Err: errNetwork}
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return wrapped
	})
	if err != wrapped {
		t.Errorf("Should return last error: %v", err)
	}
	if calls != 3 {
		t.Errorf("Should exhaust all attempts: %d", calls)
	}
}

func TestRetry_MinimumOneAttempt(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 0, time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("Retry with attempts=0 should still run once: calls=%d err=%v", calls, err)
	}
}

func TestRetry_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := Retry(ctx, 3, time.Millisecond, func() error {
		return &RetryableError{Err: errNetwork}
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

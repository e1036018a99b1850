package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	maxRetries   = 3
	initialDelay = 1 * time.Second
	maxDelay     = 30 * time.Second
	backoffRate  = 2.0
)

// retryable reports whether an error is worth another attempt. Rate limits
// and server-side failures are transient; an authentication failure will
// not get better by asking again.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return true
		case apiErr.StatusCode >= 500:
			return true
		default:
			return false
		}
	}
	// Network-level errors without a status code are assumed transient.
	return true
}

// RetryWithBackoff executes fn with exponential backoff, up to maxRetries
// attempts starting at initialDelay and capping at maxDelay. Non-retryable
// errors and context cancellation end the loop immediately.
func RetryWithBackoff(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return "", err
		}

		lastErr = err

		// Don't sleep after the last attempt.
		if attempt < maxRetries-1 {
			select {
			case <-time.After(delay):
				delay = time.Duration(float64(delay) * backoffRate)
				if delay > maxDelay {
					delay = maxDelay
				}
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

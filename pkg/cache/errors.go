package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrBackend marks failures talking to a remote cache (Redis, MongoDB).
	ErrBackend = errors.New("cache backend unavailable")

	// ErrUnknownBackend is returned by Open for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown cache backend")
)

// RetryableError marks an error as transient.
type RetryableError struct{ Err error }

// Retryable wraps err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was wrapped with Retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryPolicy controls RetryWithBackoff.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry is used when connecting to remote backends.
var DefaultRetry = RetryPolicy{Attempts: 3, Delay: 250 * time.Millisecond}

// RetryWithBackoff runs fn until it succeeds, returns a non-retryable
// error, or the policy's attempts are exhausted. The delay doubles after
// each attempt.
func RetryWithBackoff(ctx context.Context, p RetryPolicy, fn func() error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	delay := p.Delay
	var last error
	for i := 0; i < p.Attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		last = err
		if !IsRetryable(err) {
			return err
		}
		if i == p.Attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return last
}

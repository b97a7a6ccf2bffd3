package wait

import (
	"time"

	"github.com/cenkalti/backoff"
	"github.com/gravitational/trace"
)

// Until polls fn every interval until it succeeds, aborts or timeout elapses.
//
// fn returns nil once the condition holds, AbortRetry to stop polling with
// the wrapped error, and any other error to keep polling.
// When the timeout elapses, Until returns a trace.LimitExceeded error
// carrying the last error returned by fn; test it with IsTimeout.
// The last poll can overshoot the timeout by at most one interval.
func Until(timeout, interval time.Duration, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.MaxInterval = interval
	b.Multiplier = 1
	b.RandomizationFactor = 0
	b.MaxElapsedTime = timeout

	var aborted bool
	err := backoff.Retry(func() error {
		err := fn()
		if abort, ok := err.(AbortRetry); ok {
			aborted = true
			return backoff.Permanent(abort.Err)
		}
		return err
	}, b)
	if err == nil {
		return nil
	}
	if aborted {
		return trace.Wrap(err)
	}
	return trace.LimitExceeded("timed out after %v: %v", timeout, trace.UserMessage(err))
}

// IsTimeout returns true if err was returned by Until after the timeout elapsed
func IsTimeout(err error) bool {
	return trace.IsLimitExceeded(err)
}

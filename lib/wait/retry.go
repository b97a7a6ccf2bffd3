package wait

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/swaglabs/robotest/lib/defaults"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// Abort causes Retryer.Do to stop with err
func Abort(err error) AbortRetry {
	return AbortRetry{Err: err}
}

// Continue causes Retryer.Do to try again, logging message
func Continue(format string, args ...interface{}) ContinueRetry {
	message := fmt.Sprintf(format, args...)
	return ContinueRetry{Message: message}
}

// AbortRetry if returned from fn, stops the retries
// and makes Retryer.Do return the wrapped Err
type AbortRetry struct {
	Err error
}

func (r AbortRetry) Error() string {
	return fmt.Sprintf("Abort(%v)", r.Err)
}

// ContinueRetry if returned from fn, schedules another attempt
type ContinueRetry struct {
	Message string
}

func (r ContinueRetry) Error() string {
	return fmt.Sprintf("ContinueRetry(%v)", r.Message)
}

// IsContinue returns true if err is a ContinueRetry, i.e. the retries were
// exhausted while fn still asked to be retried
func IsContinue(err error) bool {
	_, ok := trace.Unwrap(err).(ContinueRetry)
	return ok
}

// Do retries the given function fn for the configured number of attempts until it succeeds
// or all attempts have been exhausted
func (r Retryer) Do(ctx context.Context, fn func() error) (err error) {
	if r.FieldLogger == nil {
		r.FieldLogger = log.NewEntry(log.StandardLogger())
	}

	if ctx.Err() != nil {
		return trace.Wrap(ctx.Err())
	}

	for i := 1; i <= r.Attempts; i += 1 {
		err = fn()
		if err == nil {
			r.Debug("succeeded")
			return nil
		}

		le := r.FieldLogger
		if deadline, ok := ctx.Deadline(); ok {
			le = le.WithField("timeout-in", fmt.Sprintf("%v", time.Until(deadline)))
		}
		switch origErr := err.(type) {
		case AbortRetry:
			le.WithError(origErr.Err).Debug("aborted")
			return origErr.Err
		case ContinueRetry:
			le.Debugf("%v, attempt %v of %v", origErr.Message, i, r.Attempts)
		default:
			le.Debugf("unsuccessful attempt %v of %v: %v", i, r.Attempts, trace.UserMessage(err))
		}

		if i == r.Attempts {
			break
		}
		select {
		case <-time.After(retryDelay(r.Delay, i)):
		case <-ctx.Done():
			r.Error("context timed out")
			return err
		}
	}
	r.Errorf("all attempts failed:\n%v", trace.DebugReport(err))
	return err
}

// Retryer is a process that can retry a function
type Retryer struct {
	// Delay specifies the interval between retry attempts
	Delay time.Duration
	// Attempts specifies the number of attempts to execute before failing.
	// Should be >= 1, zero value is not useful
	Attempts int
	// FieldLogger specifies the log sink
	log.FieldLogger
}

func retryDelay(baseDelay time.Duration, errCount int) time.Duration {
	delay := baseDelay * time.Duration(math.Pow(2, float64(errCount)-1))
	if delay > defaults.RetryMaxDelay {
		return defaults.RetryMaxDelay
	}
	return delay
}

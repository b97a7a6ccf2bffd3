package driver

import (
	"fmt"
	"strings"

	"github.com/gravitational/trace"
)

// Signal classifies session-level failures
type Signal int

const (
	// SignalNone is any failure not recognized as a session signal
	SignalNone Signal = iota
	// SignalNotFound means no element matches
	SignalNotFound
	// SignalStale means the element reference is no longer attached to the page
	SignalStale
	// SignalIntercepted means another element would receive the click
	SignalIntercepted
	// SignalNotInteractable means the element cannot be interacted with
	SignalNotInteractable
)

func (r Signal) String() string {
	switch r {
	case SignalNotFound:
		return "not found"
	case SignalStale:
		return "stale"
	case SignalIntercepted:
		return "intercepted"
	case SignalNotInteractable:
		return "not interactable"
	default:
		return "none"
	}
}

// SignalError is a failure classified as a session signal
type SignalError struct {
	Signal Signal
	Err    error
}

func (r *SignalError) Error() string {
	return fmt.Sprintf("%v: %v", r.Signal, r.Err)
}

// Unwrap returns the original driver error
func (r *SignalError) Unwrap() error {
	return r.Err
}

// NewSignal returns a new error classified with the given signal
func NewSignal(signal Signal, err error) error {
	return trace.Wrap(&SignalError{Signal: signal, Err: err})
}

// SignalOf returns the signal carried by err
func SignalOf(err error) Signal {
	if err == nil {
		return SignalNone
	}
	if signal, ok := trace.Unwrap(err).(*SignalError); ok {
		return signal.Signal
	}
	return SignalNone
}

// Classify maps a WebDriver error onto a session signal using the
// W3C WebDriver error codes found in the error text.
// Errors without a recognized code are returned wrapped as is
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if SignalOf(err) != SignalNone {
		return err
	}
	message := strings.ToLower(err.Error())
	for _, m := range messages {
		for _, code := range m.codes {
			if strings.Contains(message, code) {
				return NewSignal(m.signal, err)
			}
		}
	}
	return trace.Wrap(err)
}

var messages = []struct {
	signal Signal
	codes  []string
}{
	{SignalStale, []string{"stale element reference", "staleelementreference", "not attached to the page document"}},
	{SignalIntercepted, []string{"element click intercepted", "other element would receive the click", "is not clickable at point"}},
	{SignalNotInteractable, []string{"element not interactable", "invalid element state", "element is not currently interactable"}},
	{SignalNotFound, []string{"no such element", "unable to locate element"}},
}

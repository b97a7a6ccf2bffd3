package element

import (
	"fmt"

	"github.com/gravitational/trace"
)

// Kind classifies element interaction failures
type Kind int

const (
	// NotFound means no element matched during the wait window
	NotFound Kind = iota + 1
	// NotVisible means a matching element never became visible
	NotVisible
	// NotClickable means the element never became clickable
	NotClickable
	// Stale means the element kept detaching from the page until
	// the click attempts were exhausted
	Stale
	// Obscured means another element received the click
	Obscured
	// NotTypable means the element rejected input
	NotTypable
)

func (r Kind) String() string {
	switch r {
	case NotFound:
		return "ElementNotFound"
	case NotVisible:
		return "ElementNotVisible"
	case NotClickable:
		return "ElementNotClickable"
	case Stale:
		return "ElementStale"
	case Obscured:
		return "ElementObscured"
	case NotTypable:
		return "ElementNotTypable"
	}
	return fmt.Sprintf("Kind(%d)", int(r))
}

// Error describes a failed interaction with a named element
type Error struct {
	// Kind classifies the failure
	Kind Kind
	// Name is the human-readable element name
	Name string
	// Page names the page the element belongs to
	Page string
	// Err is the underlying driver failure
	Err error
}

func (r *Error) Error() string {
	var message string
	switch r.Kind {
	case NotFound:
		message = fmt.Sprintf("%v not found on %v", r.Name, r.Page)
	case NotVisible:
		message = fmt.Sprintf("%v not visible after waiting on %v", r.Name, r.Page)
	case NotClickable:
		message = fmt.Sprintf("timed out waiting for %v to be clickable on %v", r.Name, r.Page)
	case Stale:
		message = fmt.Sprintf("%v became stale and could not be clicked on %v", r.Name, r.Page)
	case Obscured:
		message = fmt.Sprintf("%v not clickable on %v: click intercepted", r.Name, r.Page)
	case NotTypable:
		message = fmt.Sprintf("%v not interactable for typing on %v", r.Name, r.Page)
	default:
		message = fmt.Sprintf("%v failed on %v", r.Name, r.Page)
	}
	if r.Err != nil {
		return fmt.Sprintf("%v: %v", message, trace.UserMessage(r.Err))
	}
	return message
}

// Unwrap returns the underlying driver failure
func (r *Error) Unwrap() error {
	return r.Err
}

func newError(kind Kind, name, page string, err error) error {
	return trace.Wrap(&Error{Kind: kind, Name: name, Page: page, Err: err})
}

// KindOf returns the kind of the element failure err, or 0 if err
// is not an element failure
func KindOf(err error) Kind {
	if e, ok := trace.Unwrap(err).(*Error); ok {
		return e.Kind
	}
	return 0
}

// IsKind returns true if err is an element failure of the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

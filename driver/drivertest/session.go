// Package drivertest provides an in-memory browser session for tests
package drivertest

import (
	"errors"

	"github.com/swaglabs/robotest/driver"

	"github.com/gravitational/trace"
)

// Stale returns a stale element reference failure
func Stale() error {
	return driver.NewSignal(driver.SignalStale,
		errors.New("stale element reference: element is not attached to the page document"))
}

// Intercepted returns a click intercepted failure
func Intercepted() error {
	return driver.NewSignal(driver.SignalIntercepted,
		errors.New("element click intercepted: other element would receive the click"))
}

// NotFound returns a no such element failure
func NotFound() error {
	return driver.NewSignal(driver.SignalNotFound, errors.New("no such element: unable to locate element"))
}

// NotInteractable returns an element not interactable failure
func NotInteractable() error {
	return driver.NewSignal(driver.SignalNotInteractable, errors.New("element not interactable"))
}

// NewSession returns a new empty session
func NewSession() *Session {
	return &Session{elements: make(map[driver.Locator]*Element)}
}

// Session is a scripted in-memory browser session.
// It is not safe for concurrent use
type Session struct {
	elements map[driver.Locator]*Element
	url      string
	// PageTitle is returned by Title
	PageTitle string
	// Finds counts calls to Find
	Finds int
	// Closed is set once Close has been called
	Closed bool
	// Visited lists the navigated URLs
	Visited []string
	// FindErr is returned by Find if set
	FindErr error
	// OnNavigate is invoked on every navigation
	OnNavigate func(url string)
}

// Add places the element on the page at the given locator
func (r *Session) Add(locator driver.Locator, el *Element) *Element {
	r.elements[locator] = el
	return el
}

// Remove removes the element at the given locator from the page
func (r *Session) Remove(locator driver.Locator) {
	delete(r.elements, locator)
}

// Element returns the element at the given locator
func (r *Session) Element(locator driver.Locator) *Element {
	return r.elements[locator]
}

// Find returns the element at the locator, if any
func (r *Session) Find(locator driver.Locator) ([]driver.Element, error) {
	r.Finds++
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	el, ok := r.elements[locator]
	if !ok || el.Detached {
		return nil, nil
	}
	return []driver.Element{el}, nil
}

// Navigate records the URL
func (r *Session) Navigate(url string) error {
	if r.Closed {
		return trace.ConnectionProblem(nil, "session closed")
	}
	r.url = url
	r.Visited = append(r.Visited, url)
	if r.OnNavigate != nil {
		r.OnNavigate(url)
	}
	return nil
}

// URL returns the last navigated URL
func (r *Session) URL() (string, error) {
	return r.url, nil
}

// Title returns PageTitle
func (r *Session) Title() (string, error) {
	return r.PageTitle, nil
}

// Close marks the session closed
func (r *Session) Close() error {
	r.Closed = true
	return nil
}

// Element is a scripted element
type Element struct {
	// Hidden makes the element invisible
	Hidden bool
	// Disabled makes the element disabled
	Disabled bool
	// Detached makes the element disappear from Find results
	Detached bool
	// VisibleAfter is the number of visibility checks that report the element hidden
	VisibleAfter int
	// Content is the rendered text of the element
	Content string
	// Value is the input value of the element
	Value string
	// ClickErrs are returned by successive clicks, in order
	ClickErrs []error
	// ClearErr is returned by Clear
	ClearErr error
	// SendKeysErr is returned by SendKeys
	SendKeysErr error
	// TextErr is returned by Text
	TextErr error
	// OnClick is invoked on every successful click
	OnClick func()

	// Clicks counts successful clicks
	Clicks int
	// ClickAttempts counts all clicks, including failed ones
	ClickAttempts int
	// Typed lists the values received by SendKeys
	Typed []string
	// Checks counts visibility checks
	Checks int
}

// Displayed reports the element visible unless hidden or still within VisibleAfter checks
func (r *Element) Displayed() (bool, error) {
	r.Checks++
	if r.Hidden {
		return false, nil
	}
	return r.Checks > r.VisibleAfter, nil
}

// Enabled reports the element enabled unless disabled
func (r *Element) Enabled() (bool, error) {
	return !r.Disabled, nil
}

// Click returns the next scripted click error, or records a click
func (r *Element) Click() error {
	r.ClickAttempts++
	if len(r.ClickErrs) != 0 {
		err := r.ClickErrs[0]
		r.ClickErrs = r.ClickErrs[1:]
		if err != nil {
			return err
		}
	}
	r.Clicks++
	if r.OnClick != nil {
		r.OnClick()
	}
	return nil
}

// Clear clears the value
func (r *Element) Clear() error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.Value = ""
	return nil
}

// SendKeys appends text to the value
func (r *Element) SendKeys(text string) error {
	if r.SendKeysErr != nil {
		return r.SendKeysErr
	}
	r.Typed = append(r.Typed, text)
	r.Value += text
	return nil
}

// Text returns Content, or TextErr if set
func (r *Element) Text() (string, error) {
	if r.TextErr != nil {
		return "", r.TextErr
	}
	return r.Content, nil
}

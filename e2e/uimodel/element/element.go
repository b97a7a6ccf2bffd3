// Package element implements element lookups and interactions with bounded
// waiting and bounded retry on top of a browser session.
//
// Every operation looks the element up again: element references are never
// kept across calls, so the only window for a stale reference is between
// the lookup and the action inside a single call. Click covers this window
// with a fixed number of attempts.
package element

import (
	"context"
	"strings"
	"time"

	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/lib/constants"
	"github.com/swaglabs/robotest/lib/defaults"
	"github.com/swaglabs/robotest/lib/wait"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// Component names the interactor in logs
const Component = "element"

// Config configures an Interactor
type Config struct {
	// Session is the browser session to interact with
	Session driver.Session
	// Timeout is the maximum time to wait for an element to become visible or clickable.
	// Defaults to defaults.WaitTimeout
	Timeout time.Duration
	// PollInterval is the interval between element checks.
	// Defaults to defaults.PollInterval
	PollInterval time.Duration
	// ClickAttempts is the number of click attempts on a stale element.
	// Defaults to defaults.ClickAttempts
	ClickAttempts int
	// SensitiveMarkers lists element name markers which cause typed values to be masked.
	// Defaults to defaults.SensitiveMarker
	SensitiveMarkers []string
	// Page names the page the elements belong to
	Page string
	// FieldLogger is the log sink
	logrus.FieldLogger
}

// CheckAndSetDefaults validates this configuration and sets defaults
func (r *Config) CheckAndSetDefaults() error {
	if r.Session == nil {
		return trace.BadParameter("session is required")
	}
	if r.Timeout < 0 || r.PollInterval < 0 || r.ClickAttempts < 0 {
		return trace.BadParameter("timeouts and attempts must be >= 0")
	}
	if r.Timeout == 0 {
		r.Timeout = defaults.WaitTimeout
	}
	if r.PollInterval == 0 {
		r.PollInterval = defaults.PollInterval
	}
	if r.ClickAttempts == 0 {
		r.ClickAttempts = defaults.ClickAttempts
	}
	if len(r.SensitiveMarkers) == 0 {
		r.SensitiveMarkers = []string{defaults.SensitiveMarker}
	}
	if r.FieldLogger == nil {
		r.FieldLogger = logrus.StandardLogger()
	}
	return nil
}

// New returns a new Interactor
func New(config Config) (*Interactor, error) {
	if err := config.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}
	return &Interactor{Config: config}, nil
}

// Interactor finds and interacts with page elements.
// It assumes exclusive use of the session by a single caller
type Interactor struct {
	Config
}

// ForPage returns a copy of this interactor for elements of the given page
func (r *Interactor) ForPage(page string) *Interactor {
	config := r.Config
	config.Page = page
	return &Interactor{Config: config}
}

// Logger returns the log sink scoped to the page
func (r *Interactor) Logger() logrus.FieldLogger {
	return r.FieldLogger.WithFields(logrus.Fields{
		constants.FieldComponent: Component,
		constants.FieldPage:      r.Page,
	})
}

func (r *Interactor) logger(locator driver.Locator, name string) logrus.FieldLogger {
	return r.FieldLogger.WithFields(logrus.Fields{
		constants.FieldComponent: Component,
		constants.FieldPage:      r.Page,
		constants.FieldElement:   name,
		constants.FieldLocator:   locator.String(),
	})
}

// FindVisible waits for the first element matching locator to become visible and returns it.
// Fails with NotFound if nothing matched during the whole wait, or NotVisible
// if an element matched but never became visible
func (r *Interactor) FindVisible(locator driver.Locator, name string) (driver.Element, error) {
	log := r.logger(locator, name)
	log.Debug("Waiting for visibility.")
	el, seen, err := r.waitFor(locator, visible)
	if err != nil {
		if !seen {
			return nil, newError(NotFound, name, r.Page, err)
		}
		return nil, newError(NotVisible, name, r.Page, err)
	}
	log.Debug("Element is visible.")
	return el, nil
}

// Click waits for the element to become clickable and clicks it.
// If the element goes stale before the click lands, it is looked up again
// and the click is retried for up to ClickAttempts attempts in total
func (r *Interactor) Click(locator driver.Locator, name string) error {
	log := r.logger(locator, name)
	retryer := wait.Retryer{
		Delay:       defaults.ClickRetryDelay,
		Attempts:    r.ClickAttempts,
		FieldLogger: log,
	}
	var attempt int
	err := retryer.Do(context.Background(), func() error {
		attempt++
		log.Info("Clicking.")
		el, _, err := r.waitFor(locator, clickable)
		if err != nil {
			return wait.Abort(newError(NotClickable, name, r.Page, err))
		}
		err = el.Click()
		switch driver.SignalOf(err) {
		case driver.SignalNone:
			if err != nil {
				return wait.Abort(newError(NotClickable, name, r.Page, err))
			}
			return nil
		case driver.SignalStale, driver.SignalNotFound:
			log.WithError(err).Warnf("Element went stale, %v attempts left.", r.ClickAttempts-attempt)
			return wait.Continue("%v went stale", name)
		case driver.SignalIntercepted:
			return wait.Abort(newError(Obscured, name, r.Page, err))
		default:
			return wait.Abort(newError(NotClickable, name, r.Page, err))
		}
	})
	if err == nil {
		log.Debug("Clicked.")
		return nil
	}
	if wait.IsContinue(err) {
		return newError(Stale, name, r.Page, err)
	}
	return trace.Wrap(err)
}

// Type clears the element and types value into it.
// The value is masked in logs if name contains one of the sensitive markers
func (r *Interactor) Type(locator driver.Locator, value, name string) error {
	log := r.logger(locator, name)
	el, err := r.FindVisible(locator, name)
	if err != nil {
		return trace.Wrap(err)
	}
	if err := el.Clear(); err != nil {
		return newError(NotTypable, name, r.Page, err)
	}
	if err := el.SendKeys(value); err != nil {
		return newError(NotTypable, name, r.Page, err)
	}
	log.Infof("Typed %q into %q.", r.Mask(name, value), name)
	return nil
}

// ReadText returns the rendered text of the element.
// Empty text is not a failure
func (r *Interactor) ReadText(locator driver.Locator, name string) (string, error) {
	log := r.logger(locator, name)
	log.Info("Getting text.")
	el, err := r.FindVisible(locator, name)
	if err != nil {
		return "", trace.Wrap(err)
	}
	text, err := el.Text()
	if err != nil {
		kind := NotVisible
		if driver.SignalOf(err) == driver.SignalNotFound {
			kind = NotFound
		}
		return "", newError(kind, name, r.Page, err)
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("Element returned empty text.")
	}
	log.Debugf("Text retrieved: %q.", text)
	return text, nil
}

// Mask returns value, or defaults.MaskedValue if the element name
// contains a sensitive marker
func (r *Interactor) Mask(name, value string) string {
	lower := strings.ToLower(name)
	for _, marker := range r.SensitiveMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return defaults.MaskedValue
		}
	}
	return value
}

// waitFor polls for the first element matching locator until ready reports true.
// Stale references and transient lookup misses keep the wait going.
// seen reports whether any element matched the locator during the wait
func (r *Interactor) waitFor(locator driver.Locator, ready condition) (el driver.Element, seen bool, err error) {
	err = wait.Until(r.Timeout, r.PollInterval, func() error {
		elements, err := r.Session.Find(locator)
		if err != nil {
			return transient(locator, err)
		}
		if len(elements) == 0 {
			return wait.Continue("no element matches %v", locator)
		}
		seen = true
		ok, err := ready(elements[0])
		if err != nil {
			return transient(locator, err)
		}
		if !ok {
			return wait.Continue("%v is not ready", locator)
		}
		el = elements[0]
		return nil
	})
	if err != nil {
		return nil, seen, trace.Wrap(err)
	}
	return el, seen, nil
}

// transient keeps the wait going on stale references and lookup misses
// and aborts it on any other failure
func transient(locator driver.Locator, err error) error {
	switch driver.SignalOf(err) {
	case driver.SignalNotFound, driver.SignalStale:
		return wait.Continue("%v: %v", locator, err)
	}
	return wait.Abort(err)
}

type condition func(driver.Element) (bool, error)

func visible(el driver.Element) (bool, error) {
	return el.Displayed()
}

// clickable reports the element visible and enabled.
// Obstruction by other elements is only detected by the click itself
func clickable(el driver.Element) (bool, error) {
	ok, err := el.Displayed()
	if err != nil || !ok {
		return false, err
	}
	return el.Enabled()
}

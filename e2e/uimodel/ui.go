package uimodel

import (
	"strings"

	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/e2e/uimodel/element"
	"github.com/swaglabs/robotest/e2e/uimodel/login"

	"github.com/gravitational/trace"
)

// UI is a facade for accessing high level ui model objects
type UI struct {
	session  driver.Session
	elements *element.Interactor
}

// New returns a new UI for the given session
func New(session driver.Session, elements *element.Interactor) UI {
	return UI{session: session, elements: elements}
}

// GoToLogin navigates to the login page at URL and returns the login page object
func (u UI) GoToLogin(URL string) (login.Page, error) {
	u.elements.Logger().Infof("Navigating to %v.", URL)
	if err := u.session.Navigate(URL); err != nil {
		return login.Page{}, trace.Wrap(err)
	}
	current, err := u.session.URL()
	if err != nil {
		return login.Page{}, trace.Wrap(err)
	}
	if !SameURL(current, URL) {
		return login.Page{}, trace.CompareFailed("expected to be at %v, but found %v", URL, current)
	}
	return login.New(u.elements), nil
}

// SameURL returns true if both URLs are equal up to a trailing slash
func SameURL(a, b string) bool {
	return strings.TrimSuffix(a, "/") == strings.TrimSuffix(b, "/")
}

// Package driver defines the browser session contract the page models are
// written against. Backends live in the web (agouti) and selenium subpackages.
package driver

import (
	"fmt"
)

// Strategy is a selector strategy
type Strategy string

const (
	// ByID selects elements by their id attribute
	ByID Strategy = "id"
	// ByCSS selects elements with a CSS selector
	ByCSS Strategy = "css"
	// ByXPath selects elements with an XPath expression
	ByXPath Strategy = "xpath"
	// ByClass selects elements by class name
	ByClass Strategy = "class"
	// ByName selects elements by their name attribute
	ByName Strategy = "name"
)

// Locator identifies zero or more elements on the current page
type Locator struct {
	Strategy Strategy
	Value    string
}

func (r Locator) String() string {
	return fmt.Sprintf("%v=%v", r.Strategy, r.Value)
}

// ID returns a locator for elements with the given id
func ID(id string) Locator {
	return Locator{Strategy: ByID, Value: id}
}

// CSS returns a locator for elements matching the given CSS selector
func CSS(selector string) Locator {
	return Locator{Strategy: ByCSS, Value: selector}
}

// XPath returns a locator for elements matching the given XPath expression
func XPath(expr string) Locator {
	return Locator{Strategy: ByXPath, Value: expr}
}

// Class returns a locator for elements with the given class name
func Class(name string) Locator {
	return Locator{Strategy: ByClass, Value: name}
}

// Name returns a locator for elements with the given name attribute
func Name(name string) Locator {
	return Locator{Strategy: ByName, Value: name}
}

// Session is a browser session
type Session interface {
	// Find returns all elements currently matching the locator.
	// No match is not an error
	Find(Locator) ([]Element, error)
	// Navigate opens the given URL
	Navigate(url string) error
	// URL returns the URL of the current page
	URL() (string, error)
	// Title returns the title of the current page
	Title() (string, error)
	// Close ends the session and releases the browser
	Close() error
}

// Element is a reference to a DOM node.
// The reference goes stale when the page mutates
type Element interface {
	// Displayed returns true if the element is rendered visible
	Displayed() (bool, error)
	// Enabled returns true if the element is enabled
	Enabled() (bool, error)
	// Click clicks the element
	Click() error
	// Clear clears the contents of an input element
	Clear() error
	// SendKeys types text into the element
	SendKeys(text string) error
	// Text returns the rendered text of the element
	Text() (string, error)
}

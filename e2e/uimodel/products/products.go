package products

import (
	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/e2e/uimodel/element"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

const (
	// PageName names the products page in logs and errors
	PageName = "ProductsPage"
	// Title is the title shown on the products page
	Title = "Products"
)

// TitleText locates the page title
var TitleText = driver.Class("title")

// Page is the products (inventory) page
type Page struct {
	elements *element.Interactor
	log      logrus.FieldLogger
}

// New returns the products page model
func New(elements *element.Interactor) Page {
	elements = elements.ForPage(PageName)
	return Page{elements: elements, log: elements.Logger()}
}

// Title returns the title text displayed on the page
func (p Page) Title() (string, error) {
	p.log.Info("Fetching title text.")
	title, err := p.elements.ReadText(TitleText, "Title text")
	if err != nil {
		return "", trace.Wrap(err)
	}
	p.log.Debugf("Retrieved title text %q.", title)
	return title, nil
}

// Verify returns an error unless the page shows the products title
func (p Page) Verify() error {
	title, err := p.Title()
	if err != nil {
		return trace.Wrap(err)
	}
	if title != Title {
		return trace.CompareFailed("page title mismatch: expected %q, but found %q", Title, title)
	}
	return nil
}

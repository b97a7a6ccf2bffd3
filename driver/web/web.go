// Package web implements driver.Session on top of agouti
package web

import (
	"github.com/swaglabs/robotest/driver"

	"github.com/gravitational/trace"
	"github.com/sclevine/agouti"
)

// Config configures an agouti browser session
type Config struct {
	// Browser names the browser to use.
	// Only chrome is supported for a local WebDriver
	Browser string
	// Headless runs the browser without a window
	Headless bool
	// URL optionally specifies the address of a remote WebDriver (e.g. selenium grid).
	// If unspecified, a local chromedriver is started
	URL string
	// Args lists additional browser command line arguments
	Args []string
}

// CheckAndSetDefaults validates this configuration and sets defaults
func (r *Config) CheckAndSetDefaults() error {
	if r.Browser == "" {
		r.Browser = "chrome"
	}
	if r.URL == "" && r.Browser != "chrome" {
		return trace.BadParameter("browser %q requires a remote WebDriver URL", r.Browser)
	}
	return nil
}

func (r Config) args() []string {
	args := []string{"--no-sandbox", "--disable-dev-shm-usage", "--start-maximized"}
	if r.Headless {
		args = append(args, "--headless", "--window-size=1920,1080")
	}
	return append(args, r.Args...)
}

// New starts a new browser session
func New(config Config) (*Session, error) {
	if err := config.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}

	options := []agouti.Option{
		agouti.Browser(config.Browser),
		agouti.ChromeOptions("args", config.args()),
	}

	if config.URL != "" {
		page, err := agouti.NewPage(config.URL, options...)
		if err != nil {
			return nil, trace.Wrap(err, "failed to connect to WebDriver at %v", config.URL)
		}
		return &Session{page: page}, nil
	}

	wd := agouti.ChromeDriver(options...)
	if err := wd.Start(); err != nil {
		return nil, trace.Wrap(err, "failed to start chromedriver")
	}
	page, err := wd.NewPage()
	if err != nil {
		wd.Stop()
		return nil, trace.Wrap(err)
	}
	return &Session{driver: wd, page: page}, nil
}

// Session is a browser session driven by agouti
type Session struct {
	// driver is only set for a local WebDriver
	driver *agouti.WebDriver
	page   *agouti.Page
}

// Page returns the underlying agouti page
func (r *Session) Page() *agouti.Page {
	return r.page
}

// Find returns all elements currently matching the locator.
// Agouti selections are resolved lazily, so every element call
// looks the node up again
func (r *Session) Find(locator driver.Locator) ([]driver.Element, error) {
	selection, err := r.all(locator)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	count, err := selection.Count()
	if err != nil {
		return nil, driver.Classify(err)
	}
	elements := make([]driver.Element, 0, count)
	for i := 0; i < count; i++ {
		elements = append(elements, element{selection.At(i)})
	}
	return elements, nil
}

func (r *Session) all(locator driver.Locator) (*agouti.MultiSelection, error) {
	switch locator.Strategy {
	case driver.ByID:
		return r.page.AllByID(locator.Value), nil
	case driver.ByCSS:
		return r.page.All(locator.Value), nil
	case driver.ByXPath:
		return r.page.AllByXPath(locator.Value), nil
	case driver.ByClass:
		return r.page.AllByClass(locator.Value), nil
	case driver.ByName:
		return r.page.AllByName(locator.Value), nil
	}
	return nil, trace.BadParameter("unsupported locator strategy %q", locator.Strategy)
}

// Navigate opens the given URL
func (r *Session) Navigate(url string) error {
	return trace.Wrap(r.page.Navigate(url))
}

// URL returns the URL of the current page
func (r *Session) URL() (string, error) {
	url, err := r.page.URL()
	return url, trace.Wrap(err)
}

// Title returns the title of the current page
func (r *Session) Title() (string, error) {
	title, err := r.page.Title()
	return title, trace.Wrap(err)
}

// Close ends the session and stops the local WebDriver
func (r *Session) Close() error {
	var errors []error
	if err := r.page.Destroy(); err != nil {
		errors = append(errors, err)
	}
	if r.driver != nil {
		if err := r.driver.Stop(); err != nil {
			errors = append(errors, err)
		}
	}
	return trace.NewAggregate(errors...)
}

type element struct {
	*agouti.Selection
}

func (r element) Displayed() (bool, error) {
	visible, err := r.Visible()
	return visible, driver.Classify(err)
}

func (r element) Enabled() (bool, error) {
	enabled, err := r.Selection.Enabled()
	return enabled, driver.Classify(err)
}

func (r element) Click() error {
	return driver.Classify(r.Selection.Click())
}

func (r element) Clear() error {
	return driver.Classify(r.Selection.Clear())
}

func (r element) SendKeys(text string) error {
	return driver.Classify(r.Selection.SendKeys(text))
}

func (r element) Text() (string, error) {
	text, err := r.Selection.Text()
	return text, driver.Classify(err)
}

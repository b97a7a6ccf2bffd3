// Package selenium implements driver.Session on top of a remote selenium WebDriver
package selenium

import (
	"github.com/swaglabs/robotest/driver"

	"github.com/gravitational/trace"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// New connects to the remote WebDriver and opens a new browser session
func New(config Config) (*Session, error) {
	err := config.CheckAndSetDefaults()
	if err != nil {
		return nil, trace.Wrap(err)
	}

	caps := selenium.Capabilities{"browserName": config.BrowserName}
	if config.BrowserName == "chrome" {
		args := []string{"--no-sandbox", "--disable-dev-shm-usage"}
		if config.Headless {
			args = append(args, "--headless", "--window-size=1920,1080")
		}
		caps.AddChrome(chrome.Capabilities{Args: args})
	}
	remote, err := selenium.NewRemote(caps, config.URL)
	if err != nil {
		return nil, trace.Wrap(err, "failed to connect to WebDriver at %v", config.URL)
	}

	return &Session{WebDriver: remote}, nil
}

// CheckAndSetDefaults validates this configuration and sets defaults
func (r *Config) CheckAndSetDefaults() error {
	if r.URL == "" {
		return trace.BadParameter("WebDriver URL is required")
	}
	if r.BrowserName == "" {
		r.BrowserName = "chrome"
	}
	return nil
}

// Config configures a selenium session
type Config struct {
	// URL is the address of the remote WebDriver, e.g. http://localhost:4444/wd/hub
	URL string
	// BrowserName defines the browser to use
	BrowserName string
	// Headless runs the browser without a window
	Headless bool
}

// Session is a browser session driven by a remote selenium WebDriver.
// Unlike agouti selections, elements returned by Find are real handles
// and go stale when the page re-renders
type Session struct {
	selenium.WebDriver
}

// Find returns all elements currently matching the locator
func (r *Session) Find(locator driver.Locator) ([]driver.Element, error) {
	by, value, err := strategy(locator)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	found, err := r.FindElements(by, value)
	if err != nil {
		err = driver.Classify(err)
		if driver.SignalOf(err) == driver.SignalNotFound {
			return nil, nil
		}
		return nil, err
	}
	elements := make([]driver.Element, 0, len(found))
	for _, el := range found {
		elements = append(elements, element{el})
	}
	return elements, nil
}

func strategy(locator driver.Locator) (by, value string, err error) {
	switch locator.Strategy {
	case driver.ByID:
		return selenium.ByID, locator.Value, nil
	case driver.ByCSS:
		return selenium.ByCSSSelector, locator.Value, nil
	case driver.ByXPath:
		return selenium.ByXPATH, locator.Value, nil
	case driver.ByClass:
		return selenium.ByClassName, locator.Value, nil
	case driver.ByName:
		return selenium.ByName, locator.Value, nil
	}
	return "", "", trace.BadParameter("unsupported locator strategy %q", locator.Strategy)
}

// Navigate opens the given URL
func (r *Session) Navigate(url string) error {
	return trace.Wrap(r.Get(url))
}

// URL returns the URL of the current page
func (r *Session) URL() (string, error) {
	url, err := r.CurrentURL()
	return url, trace.Wrap(err)
}

// Title returns the title of the current page
func (r *Session) Title() (string, error) {
	title, err := r.WebDriver.Title()
	return title, trace.Wrap(err)
}

// Close ends the browser session
func (r *Session) Close() error {
	return trace.Wrap(r.Quit())
}

type element struct {
	selenium.WebElement
}

func (r element) Displayed() (bool, error) {
	displayed, err := r.IsDisplayed()
	return displayed, driver.Classify(err)
}

func (r element) Enabled() (bool, error) {
	enabled, err := r.IsEnabled()
	return enabled, driver.Classify(err)
}

func (r element) Click() error {
	return driver.Classify(r.WebElement.Click())
}

func (r element) Clear() error {
	return driver.Classify(r.WebElement.Clear())
}

func (r element) SendKeys(text string) error {
	return driver.Classify(r.WebElement.SendKeys(text))
}

func (r element) Text() (string, error) {
	text, err := r.WebElement.Text()
	return text, driver.Classify(err)
}

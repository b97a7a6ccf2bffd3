// Package steps binds the login feature steps to the page models
package steps

import (
	"context"

	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/e2e/framework"
	"github.com/swaglabs/robotest/e2e/uimodel"
	"github.com/swaglabs/robotest/e2e/uimodel/login"
	"github.com/swaglabs/robotest/e2e/uimodel/products"
	"github.com/swaglabs/robotest/lib/constants"

	"github.com/cucumber/godog"
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

const (
	// invalidUsername is a user that does not exist
	invalidUsername = "Standard_user"
	// invalidPassword is a password no user has
	invalidPassword = "Incorrect password"
)

// Config configures the login steps
type Config struct {
	// TestContext specifies the application URL and credentials
	TestContext framework.TestContext
	// Factory starts browser sessions.
	// Defaults to framework.NewSession
	Factory framework.SessionFactory
	// FieldLogger is the log sink
	logrus.FieldLogger
}

// InitializeScenario registers the login steps and the hooks that start
// a browser session before each scenario and end it after
func InitializeScenario(sc *godog.ScenarioContext, config Config) {
	if config.Factory == nil {
		config.Factory = framework.NewSession
	}
	if config.FieldLogger == nil {
		config.FieldLogger = logrus.StandardLogger()
	}
	s := &scenario{Config: config}

	sc.Before(s.setUp)
	sc.After(s.tearDown)

	sc.Step(`^I am on the SauceDemo login page$`, s.onLoginPage)
	sc.Step(`^I enter username and password$`, s.enterValidCredentials)
	sc.Step(`^I enter invalid username and password$`, s.enterInvalidCredentials)
	sc.Step(`^the user enters "([^"]*)" as username and "([^"]*)" as password$`, s.enterCredentials)
	sc.Step(`^I click on the submit button$`, s.clickSubmit)
	sc.Step(`^I should see the Products page$`, s.onProductsPage)
	sc.Step(`^an error message "([^"]*)" should be displayed$`, s.errorDisplayed)
}

// scenario holds the state of a single scenario
type scenario struct {
	Config
	log      logrus.FieldLogger
	session  driver.Session
	release  framework.Release
	ui       uimodel.UI
	login    login.Page
	products products.Page
}

func (s *scenario) setUp(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
	s.log = s.FieldLogger.WithFields(logrus.Fields{
		constants.FieldComponent: "steps",
		constants.FieldScenario:  sc.Name,
	})
	session, release, err := framework.AcquireWith(ctx, s.Factory, s.TestContext, s.log)
	if err != nil {
		return ctx, trace.Wrap(err)
	}
	elements, err := s.TestContext.Interactor(session, s.log)
	if err != nil {
		release()
		return ctx, trace.Wrap(err)
	}
	s.session = session
	s.release = release
	s.ui = uimodel.New(session, elements)
	return ctx, nil
}

func (s *scenario) tearDown(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
	if err != nil {
		s.log.WithError(err).Warn("Scenario failed.")
	}
	if s.release == nil {
		return ctx, nil
	}
	errRelease := s.release()
	s.session, s.release = nil, nil
	return ctx, trace.Wrap(errRelease)
}

func (s *scenario) onLoginPage() (err error) {
	s.login, err = s.ui.GoToLogin(s.TestContext.URL)
	return trace.Wrap(err)
}

func (s *scenario) enterValidCredentials() error {
	return s.enter(s.TestContext.Login.Username, s.TestContext.Login.Password)
}

func (s *scenario) enterInvalidCredentials() error {
	return s.enter(invalidUsername, invalidPassword)
}

// enterCredentials leaves a field empty when its placeholder is empty
// and uses the configured credential otherwise
func (s *scenario) enterCredentials(usernameKey, passwordKey string) error {
	var username, password string
	if usernameKey != "" {
		username = s.TestContext.Login.Username
	}
	if passwordKey != "" {
		password = s.TestContext.Login.Password
	}
	return s.enter(username, password)
}

func (s *scenario) enter(username, password string) error {
	if err := s.login.EnterUsername(username); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(s.login.EnterPassword(password))
}

func (s *scenario) clickSubmit() (err error) {
	s.products, err = s.login.ClickLogin()
	return trace.Wrap(err)
}

func (s *scenario) onProductsPage() error {
	return trace.Wrap(s.products.Verify())
}

func (s *scenario) errorDisplayed(expected string) error {
	message, err := s.login.InvalidLoginError()
	if err != nil {
		return trace.Wrap(err)
	}
	if message != expected {
		return trace.CompareFailed("incorrect error message displayed: expected %q, but found %q", expected, message)
	}
	return nil
}

package login

import (
	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/e2e/uimodel/element"
	"github.com/swaglabs/robotest/e2e/uimodel/products"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

const (
	// PageName names the login page in logs and errors
	PageName = "LoginPage"

	// InvalidCredentialsMessage is shown for unknown username/password pairs
	InvalidCredentialsMessage = "Epic sadface: Username and password do not match any user in this service"
	// UsernameRequiredMessage is shown when the username is left empty
	UsernameRequiredMessage = "Epic sadface: Username is required"
	// PasswordRequiredMessage is shown when the password is left empty
	PasswordRequiredMessage = "Epic sadface: Password is required"
)

var (
	// UsernameField locates the username input
	UsernameField = driver.ID("user-name")
	// PasswordField locates the password input
	PasswordField = driver.ID("password")
	// LoginButton locates the submit button
	LoginButton = driver.ID("login-button")
	// InvalidLoginError locates the error shown after a failed login
	InvalidLoginError = driver.XPath("//div[@class='error-message-container error']/h3")
)

// Page is the login page
type Page struct {
	elements *element.Interactor
	log      logrus.FieldLogger
}

// New returns the login page model
func New(elements *element.Interactor) Page {
	elements = elements.ForPage(PageName)
	log := elements.Logger()
	log.Debug("Initialized login page.")
	return Page{elements: elements, log: log}
}

// EnterUsername types username into the username field
func (p Page) EnterUsername(username string) error {
	p.log.Debugf("Entering username %q.", username)
	if err := p.elements.Type(UsernameField, username, "Username field"); err != nil {
		return trace.Wrap(err)
	}
	p.log.Info("Username entered.")
	return nil
}

// EnterPassword types password into the password field
func (p Page) EnterPassword(password string) error {
	p.log.Debug("Entering password.")
	if err := p.elements.Type(PasswordField, password, "Password field"); err != nil {
		return trace.Wrap(err)
	}
	p.log.Info("Password entered.")
	return nil
}

// ClickLogin submits the login form and returns the products page
// expected after a successful login
func (p Page) ClickLogin() (products.Page, error) {
	p.log.Debug("Clicking the login button.")
	if err := p.elements.Click(LoginButton, "Login button"); err != nil {
		return products.Page{}, trace.Wrap(err)
	}
	p.log.Info("Login button clicked.")
	return products.New(p.elements), nil
}

// Login enters the credentials and submits the form
func (p Page) Login(username, password string) (products.Page, error) {
	if err := p.EnterUsername(username); err != nil {
		return products.Page{}, trace.Wrap(err)
	}
	if err := p.EnterPassword(password); err != nil {
		return products.Page{}, trace.Wrap(err)
	}
	return p.ClickLogin()
}

// InvalidLoginError returns the error message shown after a failed login attempt
func (p Page) InvalidLoginError() (string, error) {
	p.log.Debug("Fetching invalid login error message.")
	message, err := p.elements.ReadText(InvalidLoginError, "Invalid login error")
	if err != nil {
		return "", trace.Wrap(err)
	}
	p.log.Infof("Invalid login error message: %q.", message)
	return message, nil
}

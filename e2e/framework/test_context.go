package framework

import (
	"os"
	"reflect"

	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/e2e/uimodel/element"
	"github.com/swaglabs/robotest/lib/config"
	"github.com/swaglabs/robotest/lib/defaults"

	"github.com/gravitational/configure"
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-playground/validator.v9"
)

// TestContext configures a test run.
// It is read from a property file and can be overridden from the environment
type TestContext struct {
	// URL is the application entry point
	URL string `property:"url" env:"ROBO_URL" validate:"required,url"`
	// Login specifies the credentials of a valid user
	Login Login
	// Driver selects the session backend: agouti or selenium
	Driver string `property:"driver" env:"ROBO_DRIVER" validate:"omitempty,oneof=agouti selenium"`
	// Browser names the browser to use
	Browser string `property:"browser" env:"ROBO_BROWSER"`
	// Headless runs the browser without a window
	Headless Flag `property:"headless" env:"ROBO_HEADLESS"`
	// WebDriverURL optionally specifies a remote WebDriver.
	// Required for the selenium driver
	WebDriverURL string `property:"webdriver_url" env:"ROBO_WEBDRIVER_URL" validate:"omitempty,url"`
	// WaitTimeout is the maximum time to wait for an element.
	// Defaults to defaults.WaitTimeout if unspecified
	WaitTimeout config.Timeout `property:"wait_timeout" env:"ROBO_WAIT_TIMEOUT"`
	// PollInterval is the interval between element checks.
	// Defaults to defaults.PollInterval if unspecified
	PollInterval config.Timeout `property:"poll_interval" env:"ROBO_POLL_INTERVAL"`
	// ClickAttempts is the number of attempts to click a stale element.
	// Defaults to defaults.ClickAttempts if unspecified
	ClickAttempts Count `property:"click_attempts" env:"ROBO_CLICK_ATTEMPTS"`
	// ReportDir specifies the directory for logs and feature reports
	ReportDir string `property:"report_dir" env:"ROBO_REPORT_DIR"`

	// Properties lists all properties read from the property file
	Properties config.Properties
}

// Login specifies user credentials
type Login struct {
	Username string `property:"username" env:"ROBO_USERNAME" validate:"required"`
	Password string `property:"password" env:"ROBO_PASSWORD" validate:"required"`
}

// ConfigPath returns the path to the property file from the environment,
// falling back to defaults.ConfigFile
func ConfigPath() string {
	if path := os.Getenv(defaults.ConfigFileEnv); path != "" {
		return path
	}
	return defaults.ConfigFile
}

// LoadTestContext reads the test context from the property file at path
func LoadTestContext(path string) (*TestContext, error) {
	props, err := config.ReadProperties(path)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return NewTestContext(props)
}

// NewTestContext builds the test context from properties and the environment
func NewTestContext(props config.Properties) (*TestContext, error) {
	ctx := TestContext{Properties: props}
	err := setProperties(reflect.ValueOf(&ctx).Elem(), props)
	if err != nil {
		return nil, trace.Wrap(err)
	}

	err = configure.ParseEnv(&ctx)
	if err != nil {
		return nil, trace.Wrap(err)
	}

	err = ctx.CheckAndSetDefaults()
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return &ctx, nil
}

// CheckAndSetDefaults validates the test context and sets defaults
func (r *TestContext) CheckAndSetDefaults() error {
	if r.URL == "" {
		r.URL = defaults.BaseURL
	}
	if r.Driver == "" {
		r.Driver = defaults.Driver
	}
	if r.Browser == "" {
		r.Browser = defaults.Browser
	}
	if err := validator.New().Struct(r); err != nil {
		return trace.BadParameter("invalid test configuration: %v", err)
	}
	var errors []error
	if r.Driver == "selenium" && r.WebDriverURL == "" {
		errors = append(errors, trace.BadParameter("selenium driver requires webdriver_url"))
	}
	if r.WaitTimeout.Duration == 0 {
		r.WaitTimeout.Duration = defaults.WaitTimeout
	}
	if r.PollInterval.Duration == 0 {
		r.PollInterval.Duration = defaults.PollInterval
	}
	if r.PollInterval.Duration > r.WaitTimeout.Duration {
		errors = append(errors, trace.BadParameter("poll_interval %v exceeds wait_timeout %v",
			r.PollInterval, r.WaitTimeout))
	}
	if r.ClickAttempts == 0 {
		r.ClickAttempts = defaults.ClickAttempts
	}
	return trace.NewAggregate(errors...)
}

// GetProperty returns the value of the property with the given key
func (r TestContext) GetProperty(key string) (string, error) {
	return r.Properties.GetProperty(key)
}

// Interactor returns an element interactor for the session configured with
// the wait policy of this test context
func (r TestContext) Interactor(session driver.Session, log logrus.FieldLogger) (*element.Interactor, error) {
	return element.New(element.Config{
		Session:       session,
		Timeout:       r.WaitTimeout.Duration,
		PollInterval:  r.PollInterval.Duration,
		ClickAttempts: r.ClickAttempts.Int(),
		FieldLogger:   log,
	})
}

// setProperties sets the fields of v tagged with `property` from props
func setProperties(v reflect.Value, props config.Properties) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)
		key := field.Tag.Get("property")
		if key == "" {
			if value.Kind() == reflect.Struct && field.Type.NumField() > 0 {
				if err := setProperties(value, props); err != nil {
					return trace.Wrap(err)
				}
			}
			continue
		}
		data, ok := props[key]
		if !ok {
			continue
		}
		if setter, ok := value.Addr().Interface().(configure.EnvSetter); ok {
			if err := setter.SetEnv(data); err != nil {
				return trace.BadParameter("property %v: %v", key, err)
			}
			continue
		}
		if value.Kind() != reflect.String {
			return trace.BadParameter("property %v: unsupported field type %v", key, field.Type)
		}
		value.SetString(data)
	}
	return nil
}

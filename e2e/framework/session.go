package framework

import (
	"context"
	"sync"

	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/driver/selenium"
	"github.com/swaglabs/robotest/driver/web"
	"github.com/swaglabs/robotest/lib/constants"
	"github.com/swaglabs/robotest/lib/defaults"
	"github.com/swaglabs/robotest/lib/wait"

	"github.com/google/uuid"
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// Release ends a session obtained with Acquire.
// It is safe to call more than once
type Release func() error

// SessionFactory starts a new browser session
type SessionFactory func(config TestContext) (driver.Session, error)

// NewSession starts a browser session with the backend selected by config
func NewSession(config TestContext) (driver.Session, error) {
	switch config.Driver {
	case "selenium":
		session, err := selenium.New(selenium.Config{
			URL:         config.WebDriverURL,
			BrowserName: config.Browser,
			Headless:    config.Headless.Bool(),
		})
		if err != nil {
			return nil, trace.Wrap(err)
		}
		return session, nil
	case "agouti", "":
		session, err := web.New(web.Config{
			Browser:  config.Browser,
			Headless: config.Headless.Bool(),
			URL:      config.WebDriverURL,
		})
		if err != nil {
			return nil, trace.Wrap(err)
		}
		return session, nil
	}
	return nil, trace.BadParameter("unknown driver %q", config.Driver)
}

// Acquire starts a new browser session using NewSession
func Acquire(ctx context.Context, config TestContext, log logrus.FieldLogger) (driver.Session, Release, error) {
	return AcquireWith(ctx, NewSession, config, log)
}

// AcquireWith starts a new browser session with the given factory, retrying
// failed starts. The returned Release must be called to end the session
func AcquireWith(ctx context.Context, factory SessionFactory, config TestContext, log logrus.FieldLogger) (driver.Session, Release, error) {
	log = log.WithFields(logrus.Fields{
		constants.FieldComponent: "session",
		constants.FieldSession:   uuid.New().String(),
		"driver":                 config.Driver,
		"browser":                config.Browser,
	})
	var session driver.Session
	retryer := wait.Retryer{
		Delay:       defaults.SessionStartDelay,
		Attempts:    defaults.SessionStartAttempts,
		FieldLogger: log,
	}
	err := retryer.Do(ctx, func() (err error) {
		session, err = factory(config)
		if trace.IsBadParameter(err) {
			return wait.Abort(err)
		}
		return trace.Wrap(err)
	})
	if err != nil {
		return nil, nil, trace.Wrap(err, "failed to start browser session")
	}
	log.Info("Browser launched.")

	var once sync.Once
	release := func() (err error) {
		once.Do(func() {
			err = session.Close()
			if err != nil {
				log.WithError(err).Warn("Failed to close browser.")
				return
			}
			log.Info("Browser closed.")
		})
		return trace.Wrap(err)
	}
	return session, release, nil
}

// WithSession runs fn with a new browser session and ends the session
// once fn returns or panics
func WithSession(ctx context.Context, factory SessionFactory, config TestContext, log logrus.FieldLogger, fn func(driver.Session) error) (err error) {
	session, release, err := AcquireWith(ctx, factory, config, log)
	if err != nil {
		return trace.Wrap(err)
	}
	defer func() {
		if errRelease := release(); errRelease != nil {
			err = trace.NewAggregate(err, errRelease)
		}
	}()
	return fn(session)
}

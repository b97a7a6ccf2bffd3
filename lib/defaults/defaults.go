package defaults

import "time"

const (
	// WaitTimeout defines the maximum amount of time an element lookup waits
	// for the element to become visible or clickable
	WaitTimeout = 10 * time.Second
	// PollInterval defines the frequency of element polling attempts
	PollInterval = 500 * time.Millisecond
	// ClickAttempts defines the number of attempts to click an element that
	// went stale between lookup and click
	ClickAttempts = 2
	// ClickRetryDelay is the interval between click attempts
	ClickRetryDelay = 0

	// RetryMaxDelay caps the exponential delay between retry attempts
	RetryMaxDelay = 30 * time.Second

	// SessionStartAttempts defines the number of attempts to start a browser session
	SessionStartAttempts = 3
	// SessionStartDelay defines the interval between browser session start attempts
	SessionStartDelay = 2 * time.Second

	// Browser is the browser used when none is configured
	Browser = "chrome"
	// Driver is the session backend used when none is configured
	Driver = "agouti"
	// BaseURL is the application entry point
	BaseURL = "https://www.saucedemo.com/"

	// ConfigFileEnv names the environment variable with the path to the property file
	ConfigFileEnv = "ROBO_CONFIG_FILE"
	// ConfigFile is the property file looked up when none is specified
	ConfigFile = "config.properties"

	// SensitiveMarker is the element name marker that causes typed values
	// to be masked in logs
	SensitiveMarker = "password"
	// MaskedValue replaces sensitive values in logs
	MaskedValue = "[HIDDEN]"

	// SharedDirMask is the permission mask for report directories
	SharedDirMask = 0755
)

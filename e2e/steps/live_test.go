package steps

import (
	"os"
	"testing"

	"github.com/swaglabs/robotest/e2e/framework"
	"github.com/swaglabs/robotest/lib/defaults"
	"github.com/swaglabs/robotest/lib/xlog"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

func TestFeaturesInBrowser(t *testing.T) {
	if os.Getenv(defaults.ConfigFileEnv) == "" {
		t.Skipf("%v is not set, skipping live browser tests", defaults.ConfigFileEnv)
	}
	testContext, err := framework.LoadTestContext(framework.ConfigPath())
	require.NoError(t, err)

	suite := godog.TestSuite{
		Name: "login",
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			InitializeScenario(sc, Config{
				TestContext: *testContext,
				FieldLogger: xlog.NewTestLogger(t),
			})
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Strict:   true,
			TestingT: t,
		},
	}
	require.Equal(t, 0, suite.Run())
}

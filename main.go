package main

import (
	"context"
	"fmt"
	"os"

	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/e2e/framework"
	"github.com/swaglabs/robotest/e2e/steps"
	"github.com/swaglabs/robotest/e2e/uimodel"

	"github.com/cucumber/godog"
	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(); err != nil {
		log.Error(trace.DebugReport(err))
		os.Exit(255)
	}
}

func run() error {
	var (
		app    = kingpin.New("robotest", "Swag Labs login flow tests")
		debug  = app.Flag("debug", "verbose console output").Bool()
		config = app.Flag("config", "path to the property file").Default(framework.ConfigPath()).String()

		clogin = app.Command("login", "log in as the configured user and print the products page title")

		cfeatures       = app.Command("features", "run feature files")
		cfeaturesFormat = cfeatures.Flag("format", "report format").Default("pretty").String()
		cfeaturesTags   = cfeatures.Flag("tags", "run only scenarios matching the tag expression").String()
		cfeaturesPaths  = cfeatures.Arg("paths", "feature files or directories").Default("e2e/features").Strings()
	)

	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		return trace.Wrap(err)
	}

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	format := "log"
	if cmd == cfeatures.FullCommand() {
		format = *cfeaturesFormat
	}
	cfg, err := newRunConfig(*config, level, format)
	if err != nil {
		return trace.Wrap(err)
	}
	defer cfg.Close()

	ctx := context.Background()
	switch cmd {
	case clogin.FullCommand():
		return trace.Wrap(login(ctx, cfg))
	case cfeatures.FullCommand():
		return trace.Wrap(features(cfg, *cfeaturesFormat, *cfeaturesTags, *cfeaturesPaths))
	}
	return nil
}

func login(ctx context.Context, config *runConfig) error {
	return framework.WithSession(ctx, framework.NewSession, *config.TestContext, config.log,
		func(session driver.Session) error {
			elements, err := config.Interactor(session, config.log)
			if err != nil {
				return trace.Wrap(err)
			}
			loginPage, err := uimodel.New(session, elements).GoToLogin(config.URL)
			if err != nil {
				return trace.Wrap(err)
			}
			productsPage, err := loginPage.Login(config.Login.Username, config.Login.Password)
			if err != nil {
				return trace.Wrap(err)
			}
			if err := productsPage.Verify(); err != nil {
				return trace.Wrap(err)
			}
			title, err := productsPage.Title()
			if err != nil {
				return trace.Wrap(err)
			}
			fmt.Fprintln(config.report, title)
			return nil
		})
}

func features(config *runConfig, format, tags string, paths []string) error {
	suite := godog.TestSuite{
		Name: "robotest",
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			steps.InitializeScenario(sc, steps.Config{
				TestContext: *config.TestContext,
				FieldLogger: config.log,
			})
		},
		Options: &godog.Options{
			Format: format,
			Tags:   tags,
			Paths:  paths,
			Strict: true,
			Output: config.report,
		},
	}
	if status := suite.Run(); status != 0 {
		return trace.Errorf("feature run failed with status %v", status)
	}
	return nil
}

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/swaglabs/robotest/e2e/framework"
	"github.com/swaglabs/robotest/lib/defaults"
	"github.com/swaglabs/robotest/lib/xlog"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

const (
	logFile    = "robotest.log"
	reportFile = "report"
)

// runConfig is the configuration of a single command invocation
type runConfig struct {
	*framework.TestContext
	log    logrus.FieldLogger
	report io.Writer
	files  []io.Closer
}

// newRunConfig loads the test context from the property file at path and
// sets up logging. With report_dir configured, the full log and the feature
// report are written into that directory
func newRunConfig(path string, consoleLevel logrus.Level, format string) (*runConfig, error) {
	testContext, err := framework.LoadTestContext(path)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	config := &runConfig{TestContext: testContext, report: os.Stdout}
	if testContext.ReportDir == "" {
		config.log = xlog.ConsoleLogger(consoleLevel, nil)
		return config, nil
	}

	err = os.MkdirAll(testContext.ReportDir, defaults.SharedDirMask)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	logOut, err := os.Create(filepath.Join(testContext.ReportDir, logFile))
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	reportOut, err := os.Create(filepath.Join(testContext.ReportDir, reportFile+"."+format))
	if err != nil {
		logOut.Close()
		return nil, trace.ConvertSystemError(err)
	}
	config.log = xlog.ConsoleLogger(consoleLevel, logOut)
	config.report = reportOut
	config.files = []io.Closer{reportOut, logOut}
	return config, nil
}

// Close closes the report and log files
func (r *runConfig) Close() error {
	var errors []error
	for _, file := range r.files {
		if err := file.Close(); err != nil {
			errors = append(errors, trace.ConvertSystemError(err))
		}
	}
	return trace.NewAggregate(errors...)
}

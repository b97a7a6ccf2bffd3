package framework

import (
	"os"

	. "github.com/onsi/ginkgo"
	"github.com/sirupsen/logrus"
)

// RoboDescribe is local wrapper function for ginkgo.Describe.
// It adds test namespacing.
func RoboDescribe(text string, body func()) bool {
	return Describe("[robotest] "+text, body)
}

// InitLogger configures the standard logger for a test run
func InitLogger(level logrus.Level) {
	logrus.StandardLogger().Hooks = make(logrus.LevelHooks)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
}

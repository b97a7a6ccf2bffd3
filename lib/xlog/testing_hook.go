package xlog

import (
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
)

// TestingHook forwards log entries to the test log
type TestingHook struct {
	t testing.TB
}

func (hook *TestingHook) Fire(e *logrus.Entry) error {
	hook.t.Helper()
	hook.t.Log(e.Level, e.Message, fmt.Sprint(e.Data))
	return nil
}

// Levels returns logging levels supported by logrus
func (hook *TestingHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
	}
}

// NewTestLogger returns logger which prints everything to the test log
func NewTestLogger(t testing.TB) logrus.FieldLogger {
	log := logrus.New()
	log.Level = logrus.DebugLevel
	log.Out = ioutil.Discard
	log.Hooks.Add(&TestingHook{t})
	return log
}

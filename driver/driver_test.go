package driver

import (
	"errors"
	"testing"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	var testCases = []struct {
		comment string
		err     error
		signal  Signal
	}{
		{
			comment: "chromedriver stale reference",
			err:     errors.New("failed to click on selection: request unsuccessful: stale element reference: element is not attached to the page document"),
			signal:  SignalStale,
		},
		{
			comment: "click intercepted",
			err:     errors.New("element click intercepted: Element <button id=\"login-button\"> is not clickable at point (10, 20). Other element would receive the click"),
			signal:  SignalIntercepted,
		},
		{
			comment: "not interactable",
			err:     errors.New("element not interactable"),
			signal:  SignalNotInteractable,
		},
		{
			comment: "no such element",
			err:     errors.New("no such element: Unable to locate element: {\"method\":\"css selector\",\"selector\":\"#user-name\"}"),
			signal:  SignalNotFound,
		},
		{
			comment: "unrelated failure",
			err:     errors.New("connection refused"),
			signal:  SignalNone,
		},
	}
	for _, tc := range testCases {
		err := Classify(tc.err)
		assert.Equal(t, tc.signal, SignalOf(err), tc.comment)
		assert.Contains(t, err.Error(), tc.err.Error(), tc.comment)
	}
}

func TestSignalSurvivesWrapping(t *testing.T) {
	err := trace.Wrap(NewSignal(SignalStale, errors.New("stale")))
	assert.Equal(t, SignalStale, SignalOf(err))
	assert.Equal(t, SignalNone, SignalOf(nil))
	assert.NoError(t, Classify(nil))
}

func TestLocatorString(t *testing.T) {
	assert.Equal(t, "id=user-name", ID("user-name").String())
	assert.Equal(t, "xpath=//h3", XPath("//h3").String())
	assert.Equal(t, "class=title", Class("title").String())
}

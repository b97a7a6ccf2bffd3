package element_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/swaglabs/robotest/driver"
	"github.com/swaglabs/robotest/driver/drivertest"
	"github.com/swaglabs/robotest/e2e/uimodel/element"
	"github.com/swaglabs/robotest/lib/constants"
	"github.com/swaglabs/robotest/lib/defaults"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const (
	timeout  = 200 * time.Millisecond
	interval = 10 * time.Millisecond
	// slack bounds the scheduling overshoot past the wait policy
	slack = 150 * time.Millisecond
)

var (
	usernameField = driver.ID("user-name")
	passwordField = driver.ID("password")
	loginButton   = driver.ID("login-button")
	title         = driver.Class("title")
)

var _ = Describe("Interactor", func() {
	var (
		session  *drivertest.Session
		elements *element.Interactor
		hook     *logtest.Hook
	)

	BeforeEach(func() {
		var logger *logrus.Logger
		logger, hook = logtest.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		session = drivertest.NewSession()
		var err error
		elements, err = element.New(element.Config{
			Session:      session,
			Timeout:      timeout,
			PollInterval: interval,
			Page:         "LoginPage",
			FieldLogger:  logger,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("requires a session", func() {
			_, err := element.New(element.Config{})
			Expect(err).To(HaveOccurred())
		})

		It("applies the default policy", func() {
			elements, err := element.New(element.Config{Session: session})
			Expect(err).NotTo(HaveOccurred())
			Expect(elements.Timeout).To(Equal(defaults.WaitTimeout))
			Expect(elements.PollInterval).To(Equal(defaults.PollInterval))
			Expect(elements.ClickAttempts).To(Equal(2))
		})
	})

	Describe("FindVisible", func() {
		It("returns an element once it becomes visible", func() {
			field := session.Add(usernameField, &drivertest.Element{VisibleAfter: 3})
			el, err := elements.FindVisible(usernameField, "Username field")
			Expect(err).NotTo(HaveOccurred())
			Expect(el).To(BeIdenticalTo(field))
			Expect(field.Checks).To(Equal(4))
		})

		It("fails with ElementNotVisible after the wait policy if the element stays hidden", func() {
			session.Add(usernameField, &drivertest.Element{Hidden: true})
			start := time.Now()
			_, err := elements.FindVisible(usernameField, "Username field")
			elapsed := time.Since(start)
			Expect(element.KindOf(err)).To(Equal(element.NotVisible))
			Expect(err.Error()).To(ContainSubstring("Username field not visible after waiting on LoginPage"))
			Expect(elapsed).To(BeNumerically(">=", timeout))
			Expect(elapsed).To(BeNumerically("<", timeout+slack))
		})

		It("fails with ElementNotFound if nothing matches for the whole wait", func() {
			start := time.Now()
			_, err := elements.FindVisible(usernameField, "Username field")
			Expect(element.KindOf(err)).To(Equal(element.NotFound))
			Expect(time.Since(start)).To(BeNumerically(">=", timeout))
			Expect(session.Finds).To(BeNumerically(">", 1))
		})

		It("keeps waiting through stale lookups", func() {
			session.FindErr = drivertest.Stale()
			_, err := elements.FindVisible(usernameField, "Username field")
			Expect(element.KindOf(err)).To(Equal(element.NotFound))
		})

		It("aborts the wait on unexpected session failures", func() {
			session.FindErr = errors.New("connection refused")
			start := time.Now()
			_, err := elements.FindVisible(usernameField, "Username field")
			Expect(element.KindOf(err)).To(Equal(element.NotFound))
			Expect(err.Error()).To(ContainSubstring("connection refused"))
			Expect(time.Since(start)).To(BeNumerically("<", timeout))
		})
	})

	Describe("Click", func() {
		It("clicks a clickable element", func() {
			button := session.Add(loginButton, &drivertest.Element{})
			Expect(elements.Click(loginButton, "Login button")).To(Succeed())
			Expect(button.Clicks).To(Equal(1))
		})

		It("retries once when the element goes stale before the click", func() {
			button := session.Add(loginButton, &drivertest.Element{
				ClickErrs: []error{drivertest.Stale()},
			})
			Expect(elements.Click(loginButton, "Login button")).To(Succeed())
			Expect(button.ClickAttempts).To(Equal(2))
			Expect(button.Clicks).To(Equal(1))
			Expect(session.Finds).To(Equal(2))
			Expect(hook.Entries).To(ContainElement(WithTransform(
				func(e logrus.Entry) logrus.Level { return e.Level }, Equal(logrus.WarnLevel))))
		})

		It("fails with ElementStale after exactly two attempts", func() {
			button := session.Add(loginButton, &drivertest.Element{
				ClickErrs: []error{drivertest.Stale(), drivertest.Stale(), drivertest.Stale()},
			})
			err := elements.Click(loginButton, "Login button")
			Expect(element.KindOf(err)).To(Equal(element.Stale))
			Expect(err.Error()).To(ContainSubstring("Login button became stale"))
			Expect(button.ClickAttempts).To(Equal(2))
			Expect(button.Clicks).To(BeZero())
		})

		It("honours a custom click budget", func() {
			custom, err := element.New(element.Config{
				Session:       session,
				Timeout:       timeout,
				PollInterval:  interval,
				ClickAttempts: 3,
			})
			Expect(err).NotTo(HaveOccurred())
			button := session.Add(loginButton, &drivertest.Element{
				ClickErrs: []error{drivertest.Stale(), drivertest.Stale()},
			})
			Expect(custom.Click(loginButton, "Login button")).To(Succeed())
			Expect(button.ClickAttempts).To(Equal(3))
		})

		It("fails with ElementObscured without retrying an intercepted click", func() {
			button := session.Add(loginButton, &drivertest.Element{
				ClickErrs: []error{drivertest.Intercepted()},
			})
			err := elements.Click(loginButton, "Login button")
			Expect(element.KindOf(err)).To(Equal(element.Obscured))
			Expect(button.ClickAttempts).To(Equal(1))
		})

		It("fails with ElementNotClickable if the element never becomes clickable", func() {
			session.Add(loginButton, &drivertest.Element{Disabled: true})
			start := time.Now()
			err := elements.Click(loginButton, "Login button")
			Expect(element.KindOf(err)).To(Equal(element.NotClickable))
			Expect(time.Since(start)).To(BeNumerically(">=", timeout))
		})

		It("fails with ElementNotClickable on an unclassified click failure", func() {
			session.Add(loginButton, &drivertest.Element{
				ClickErrs: []error{errors.New("javascript error")},
			})
			err := elements.Click(loginButton, "Login button")
			Expect(element.KindOf(err)).To(Equal(element.NotClickable))
			Expect(err.Error()).To(ContainSubstring("javascript error"))
		})
	})

	Describe("Type", func() {
		It("clears the element and types the value", func() {
			field := session.Add(usernameField, &drivertest.Element{Value: "previous"})
			Expect(elements.Type(usernameField, "standard_user", "Username field")).To(Succeed())
			Expect(field.Value).To(Equal("standard_user"))
			Expect(loggedText(hook)).To(ContainSubstring("standard_user"))
		})

		It("masks sensitive values in logs but types the literal value", func() {
			field := session.Add(passwordField, &drivertest.Element{})
			Expect(elements.Type(passwordField, "secret123", "Password field")).To(Succeed())
			Expect(field.Typed).To(Equal([]string{"secret123"}))
			Expect(loggedText(hook)).NotTo(ContainSubstring("secret123"))
			Expect(loggedText(hook)).To(ContainSubstring(defaults.MaskedValue))
		})

		It("matches the sensitive marker in any case", func() {
			session.Add(passwordField, &drivertest.Element{})
			Expect(elements.Type(passwordField, "secret123", "PASSWORD confirmation")).To(Succeed())
			Expect(loggedText(hook)).NotTo(ContainSubstring("secret123"))
		})

		It("fails with ElementNotTypable if the element rejects input", func() {
			session.Add(usernameField, &drivertest.Element{SendKeysErr: drivertest.NotInteractable()})
			err := elements.Type(usernameField, "standard_user", "Username field")
			Expect(element.KindOf(err)).To(Equal(element.NotTypable))
		})

		It("fails with ElementNotTypable if the element cannot be cleared", func() {
			session.Add(usernameField, &drivertest.Element{ClearErr: drivertest.Stale()})
			err := elements.Type(usernameField, "standard_user", "Username field")
			Expect(element.KindOf(err)).To(Equal(element.NotTypable))
		})

		It("fails like FindVisible if the element is missing", func() {
			err := elements.Type(usernameField, "standard_user", "Username field")
			Expect(element.KindOf(err)).To(Equal(element.NotFound))
		})
	})

	Describe("ReadText", func() {
		It("returns the rendered text", func() {
			session.Add(title, &drivertest.Element{Content: "Products"})
			Expect(elements.ReadText(title, "Title text")).To(Equal("Products"))
		})

		It("returns empty text successfully and warns about it", func() {
			session.Add(title, &drivertest.Element{Content: ""})
			text, err := elements.ReadText(title, "Title text")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(BeEmpty())
			Expect(hook.Entries).To(ContainElement(WithTransform(
				func(e logrus.Entry) string { return e.Message }, Equal("Element returned empty text."))))
		})

		It("fails like FindVisible if the element stays hidden", func() {
			session.Add(title, &drivertest.Element{Hidden: true, Content: "Products"})
			_, err := elements.ReadText(title, "Title text")
			Expect(element.KindOf(err)).To(Equal(element.NotVisible))
		})

		It("fails with ElementNotFound if the element disappears while reading", func() {
			session.Add(title, &drivertest.Element{TextErr: drivertest.NotFound()})
			_, err := elements.ReadText(title, "Title text")
			Expect(element.IsKind(err, element.NotFound)).To(BeTrue())
		})

		It("fails with ElementNotVisible if the text cannot be read", func() {
			session.Add(title, &drivertest.Element{TextErr: errors.New("javascript error")})
			_, err := elements.ReadText(title, "Title text")
			Expect(element.IsKind(err, element.NotVisible)).To(BeTrue())
			Expect(element.IsKind(err, element.NotFound)).To(BeFalse())
		})
	})

	It("tags log entries with the component, page and element", func() {
		session.Add(title, &drivertest.Element{Content: "Products"})
		_, err := elements.ReadText(title, "Title text")
		Expect(err).NotTo(HaveOccurred())
		entry := hook.LastEntry()
		Expect(entry).NotTo(BeNil())
		Expect(entry.Data).To(HaveKeyWithValue(constants.FieldComponent, element.Component))
		Expect(entry.Data).To(HaveKeyWithValue(constants.FieldPage, "LoginPage"))
		Expect(entry.Data).To(HaveKeyWithValue(constants.FieldElement, "Title text"))
	})

	Describe("default wait policy", func() {
		BeforeEach(func() {
			var err error
			elements, err = element.New(element.Config{Session: session, Page: "LoginPage"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("clicks an immediately clickable element without retries within one poll interval", func() {
			button := session.Add(loginButton, &drivertest.Element{})
			start := time.Now()
			Expect(elements.Click(loginButton, "Login button")).To(Succeed())
			Expect(time.Since(start)).To(BeNumerically("<", defaults.PollInterval))
			Expect(button.ClickAttempts).To(Equal(1))
			Expect(session.Finds).To(Equal(1))
		})

		It("fails with ElementNotFound after the full wait policy", func() {
			if testing.Short() {
				Skip("waits for the full default policy")
			}
			start := time.Now()
			_, err := elements.FindVisible(driver.ID("missing"), "Missing element")
			elapsed := time.Since(start)
			Expect(element.KindOf(err)).To(Equal(element.NotFound))
			Expect(elapsed).To(BeNumerically(">=", defaults.WaitTimeout))
			Expect(elapsed).To(BeNumerically("<", defaults.WaitTimeout+2*defaults.PollInterval))
		})
	})
})

func loggedText(hook *logtest.Hook) string {
	var text string
	for _, entry := range hook.AllEntries() {
		text += entry.Message + " " + fmt.Sprint(entry.Data) + "\n"
	}
	return text
}

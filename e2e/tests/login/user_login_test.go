package login_test

import (
	"github.com/swaglabs/robotest/driver/web"
	"github.com/swaglabs/robotest/e2e/framework"
	"github.com/swaglabs/robotest/e2e/uimodel/login"
	"github.com/swaglabs/robotest/e2e/uimodel/products"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	am "github.com/sclevine/agouti/matchers"
)

var _ = framework.RoboDescribe("Login", func() {
	It("should show the products page to a valid user", func() {
		By("opening the login page")
		loginPage, err := ui.GoToLogin(testContext.URL)
		Expect(err).NotTo(HaveOccurred())

		By("logging in with valid credentials")
		productsPage, err := loginPage.Login(testContext.Login.Username, testContext.Login.Password)
		Expect(err).NotTo(HaveOccurred())
		Expect(productsPage.Verify()).To(Succeed())

		if s, ok := session.(*web.Session); ok {
			Expect(s.Page().FindByClass("title")).To(am.HaveText(products.Title))
		}
	})

	It("should reject an unknown user", func() {
		loginPage, err := ui.GoToLogin(testContext.URL)
		Expect(err).NotTo(HaveOccurred())

		_, err = loginPage.Login("Standard_user", "Incorrect password")
		Expect(err).NotTo(HaveOccurred())
		Expect(loginPage.InvalidLoginError()).To(Equal(login.InvalidCredentialsMessage))
	})
})

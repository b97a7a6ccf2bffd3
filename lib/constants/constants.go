package constants

const (
	// FieldComponent defines a logging field with the name of the logging component
	FieldComponent = "component"

	// FieldElement defines a logging field with the human-readable element name
	FieldElement = "element"

	// FieldPage defines a logging field with the name of the page an element belongs to
	FieldPage = "page"

	// FieldLocator defines a logging field with the element locator
	FieldLocator = "locator"

	// FieldSession defines a logging field with the browser session id
	FieldSession = "session"

	// FieldScenario defines a logging field with the BDD scenario name
	FieldScenario = "scenario"
)

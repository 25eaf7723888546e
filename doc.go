/*
Package driverfactory keeps named Selenium WebDriver sessions for UI tests.

A Factory holds driver definitions: a name and a function that starts the
driver. Definitions are registered up front, or implicitly by asking for a
driver before anything was registered, in which case a local Chrome driver is
used. The driver of a definition is started on first use and kept until it is
closed, so every Get of the same name returns the same session.

	f, err := driverfactory.New(driverfactory.Settings{DriverPath: "/opt/drivers"})
	if err != nil {
		// ...
	}
	defer f.Close()

	wd, err := f.GetDriver() // starts chromedriver and a Chrome session
	...
	f.RegisterKind(driverfactory.Firefox)
	ff, err := f.GetDriver() // Firefox is current now

Kind-based registrations start the driver binary locally or, with the Remote
run type, connect to a Selenium server:

	f.SetRunType("remote")
	f.RegisterKind(driverfactory.Chrome) // registered as "Remote_chrome"

Failures are returned as *Error values that match ErrDuplicateDefinition,
ErrUnknownDefinition, ErrConstructionFailed or ErrUnknownKind with errors.Is.

A Factory is meant to be used from the single goroutine running a test
session; it does no locking.
*/
package driverfactory

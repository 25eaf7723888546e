package driverfactory

import (
	"time"

	"github.com/tebeka/selenium/sauce"
)

// DefaultImplicitWait is the implicit element wait applied to new local drivers
// when Settings.ImplicitWait is zero.
const DefaultImplicitWait = 5 * time.Second

// HighlightSettings configures the visual effect applied by Highlight.
type HighlightSettings struct {
	// FrameColor is the CSS color of the border drawn around the element.
	FrameColor string
	// BgColor is the CSS background color of the element.
	BgColor string
	// Timeout is how long the highlight stays visible.
	Timeout time.Duration
}

// DefaultHighlightSettings returns a red frame over a yellow background, shown
// for two seconds.
func DefaultHighlightSettings() HighlightSettings {
	return HighlightSettings{
		FrameColor: "red",
		BgColor:    "yellow",
		Timeout:    2 * time.Second,
	}
}

// Settings are the resolved configuration values consumed by a Factory.
type Settings struct {
	// RunType selects the strategy used by RegisterKind.
	RunType RunType
	// DriverPath locates the local driver binary. It may be empty (search the
	// PATH), a directory holding the binary, or the binary itself.
	DriverPath string
	// RemoteURL is the Selenium server address for remote drivers. Empty means
	// selenium.DefaultURLPrefix.
	RemoteURL string
	// ImplicitWait is the element wait applied to every new local driver.
	ImplicitWait time.Duration
	// BrowserArgs are extra command-line arguments for locally started
	// Chrome and Firefox browsers, e.g. "--headless".
	BrowserArgs []string
	// BrowserVersion is sent as the "version" capability to remote servers.
	// It must be a semantic version when set.
	BrowserVersion string
	// Sauce, when set, is merged into the remote capabilities.
	Sauce *sauce.Capabilities
	// Highlight holds the defaults used by Factory.Highlight.
	Highlight HighlightSettings
}

func (s Settings) implicitWait() time.Duration {
	if s.ImplicitWait == 0 {
		return DefaultImplicitWait
	}
	return s.ImplicitWait
}

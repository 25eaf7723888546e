package driverfactory

import (
	"fmt"

	"github.com/tebeka/selenium"
)

// StyleElement is an element whose inline style can be read and replaced.
type StyleElement interface {
	Style() (string, error)
	SetStyle(style string) error
}

// NewStyleElement adapts el, located through wd, to a StyleElement. The style
// is written with a script because WebDriver has no command to set attributes.
func NewStyleElement(wd selenium.WebDriver, el selenium.WebElement) StyleElement {
	return &webStyleElement{wd: wd, el: el}
}

type webStyleElement struct {
	wd selenium.WebDriver
	el selenium.WebElement
}

const setStyleScript = `arguments[0].setAttribute('style', arguments[1]);`

func (e *webStyleElement) Style() (string, error) {
	return e.el.GetAttribute("style")
}

func (e *webStyleElement) SetStyle(style string) error {
	_, err := e.wd.ExecuteScript(setStyleScript, []interface{}{e.el, style})
	return err
}

// highlightStyle is the inline style shown while an element is highlighted.
func highlightStyle(s HighlightSettings) string {
	return fmt.Sprintf("border: 3px solid %s; background-color: %s;", s.FrameColor, s.BgColor)
}

// Highlight highlights el with the factory's highlight settings.
func (f *Factory) Highlight(el StyleElement) error {
	s := f.settings.Highlight
	return f.HighlightWith(el, &s)
}

// HighlightWith frames el and colors its background as described by s, blocks
// for s.Timeout and then restores the original style. A nil s means
// DefaultHighlightSettings.
func (f *Factory) HighlightWith(el StyleElement, s *HighlightSettings) error {
	if s == nil {
		d := DefaultHighlightSettings()
		s = &d
	}
	orig, err := el.Style()
	if err != nil {
		return fmt.Errorf("reading style: %v", err)
	}
	if err := el.SetStyle(highlightStyle(*s)); err != nil {
		return fmt.Errorf("setting highlight style: %v", err)
	}
	if s.Timeout > 0 {
		f.sleep(s.Timeout)
	}
	if err := el.SetStyle(orig); err != nil {
		return fmt.Errorf("restoring style: %v", err)
	}
	return nil
}

// Package seleniumtest provides in-memory WebDriver and WebElement fakes that
// record the calls made on them. Methods a fake does not implement panic.
package seleniumtest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tebeka/selenium"
)

// Driver is a fake selenium.WebDriver.
type Driver struct {
	selenium.WebDriver

	// ID distinguishes drivers built by the same Builder.
	ID int

	Closes, Quits, Maximizes int
	ImplicitWait             time.Duration
	URL                      string
	PageTitle                string

	// Elements are returned by FindElements, keyed by selector value.
	Elements map[string][]selenium.WebElement

	CloseErr, QuitErr, MaximizeErr, WaitErr error
}

// Close records a window close.
func (d *Driver) Close() error {
	d.Closes++
	return d.CloseErr
}

// Quit records a session end.
func (d *Driver) Quit() error {
	d.Quits++
	return d.QuitErr
}

// MaximizeWindow records a maximize request.
func (d *Driver) MaximizeWindow(name string) error {
	if d.MaximizeErr != nil {
		return d.MaximizeErr
	}
	d.Maximizes++
	return nil
}

// SetImplicitWaitTimeout stores the timeout.
func (d *Driver) SetImplicitWaitTimeout(timeout time.Duration) error {
	if d.WaitErr != nil {
		return d.WaitErr
	}
	d.ImplicitWait = timeout
	return nil
}

// Get stores the URL.
func (d *Driver) Get(url string) error {
	d.URL = url
	return nil
}

// Title returns PageTitle.
func (d *Driver) Title() (string, error) {
	return d.PageTitle, nil
}

// FindElements returns the elements stored for value.
func (d *Driver) FindElements(by, value string) ([]selenium.WebElement, error) {
	return d.Elements[value], nil
}

// ExecuteScript understands only setAttribute calls on an *Element.
func (d *Driver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	if !strings.Contains(script, "setAttribute") || len(args) != 2 {
		return nil, fmt.Errorf("unsupported script %q", script)
	}
	el, ok := args[0].(*Element)
	if !ok {
		return nil, fmt.Errorf("script argument %T is not an *Element", args[0])
	}
	style, ok := args[1].(string)
	if !ok {
		return nil, errors.New("style is not a string")
	}
	if el.SetErr != nil {
		return nil, el.SetErr
	}
	el.Styles = append(el.Styles, style)
	el.Attrs["style"] = style
	return nil, nil
}

// Element is a fake selenium.WebElement.
type Element struct {
	selenium.WebElement

	Attrs     map[string]string
	Displayed bool
	// Styles lists every style written through a Driver script, in order.
	Styles []string

	GetErr, SetErr error
}

// NewElement returns a displayed element with the given inline style.
func NewElement(style string) *Element {
	return &Element{
		Attrs:     map[string]string{"style": style},
		Displayed: true,
	}
}

// GetAttribute returns the named attribute, or "" if it is not set.
func (e *Element) GetAttribute(name string) (string, error) {
	if e.GetErr != nil {
		return "", e.GetErr
	}
	return e.Attrs[name], nil
}

// IsDisplayed returns Displayed.
func (e *Element) IsDisplayed() (bool, error) {
	return e.Displayed, nil
}

// Builder constructs numbered Drivers and counts the calls.
type Builder struct {
	Built []*Driver
	// Err, if set, is returned instead of a driver.
	Err error
	// Nil makes Build return neither a driver nor an error.
	Nil bool
	// Paths and Endpoints record the arguments given to Local and Remote.
	Paths     []string
	Endpoints []string
	Caps      []selenium.Capabilities
}

// Build returns a new Driver.
func (b *Builder) Build() (selenium.WebDriver, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	if b.Nil {
		return nil, nil
	}
	d := &Driver{ID: len(b.Built) + 1}
	b.Built = append(b.Built, d)
	return d, nil
}

// Local records path and calls Build.
func (b *Builder) Local(path string) (selenium.WebDriver, error) {
	b.Paths = append(b.Paths, path)
	return b.Build()
}

// Remote records endpoint and caps and calls Build.
func (b *Builder) Remote(endpoint string, caps selenium.Capabilities) (selenium.WebDriver, error) {
	b.Endpoints = append(b.Endpoints, endpoint)
	b.Caps = append(b.Caps, caps)
	return b.Build()
}

// Last returns the most recently built Driver.
func (b *Builder) Last() *Driver {
	if len(b.Built) == 0 {
		return nil
	}
	return b.Built[len(b.Built)-1]
}

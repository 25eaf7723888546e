package driverfactory

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/blang/semver"
	"github.com/golang/glog"
	"github.com/tebeka/selenium"
)

// BuildFunc constructs a new driver. It is called at most once per live
// instance.
type BuildFunc func() (selenium.WebDriver, error)

// Option configures a Factory.
type Option func(*Factory) error

// WithStrategies replaces the construction strategy table.
func WithStrategies(t StrategyTable) Option {
	return func(f *Factory) error {
		for _, k := range Kinds() {
			if _, ok := t[k]; !ok {
				return fmt.Errorf("strategy table has no entry for %s", k)
			}
		}
		f.strategies = t
		return nil
	}
}

// WithServiceOptions sets the options used to start local chromedriver and
// geckodriver services. It has no effect if WithStrategies is also given.
func WithServiceOptions(opts ...selenium.ServiceOption) Option {
	return func(f *Factory) error {
		f.serviceOpts = append(f.serviceOpts, opts...)
		return nil
	}
}

// WithDriverOutput makes locally started driver processes log to w. It has
// no effect if WithStrategies is also given.
func WithDriverOutput(w io.Writer) Option {
	return func(f *Factory) error {
		f.driverOutput = w
		return nil
	}
}

// WithSleep replaces the function Highlight blocks with.
func WithSleep(sleep func(time.Duration)) Option {
	return func(f *Factory) error {
		f.sleep = sleep
		return nil
	}
}

// Factory keeps named driver definitions and the live driver built from each
// of them. The zero value is not usable; create one with New.
//
// A Factory is not safe for concurrent use. Independent test sessions should
// each own a Factory.
type Factory struct {
	// ElementSearchCriteria decides which located elements count as usable.
	// Factory itself never calls it; see Matching.
	ElementSearchCriteria func(selenium.WebElement) (bool, error)

	settings    Settings
	runType     RunType
	strategies  StrategyTable
	serviceOpts  []selenium.ServiceOption
	driverOutput io.Writer
	sleep        func(time.Duration)

	definitions map[string]BuildFunc
	instances   map[string]selenium.WebDriver
	current     string
}

// New returns a Factory with no registered drivers.
func New(settings Settings, opts ...Option) (*Factory, error) {
	f := &Factory{
		ElementSearchCriteria: func(el selenium.WebElement) (bool, error) {
			return el.IsDisplayed()
		},
		settings:    settings,
		runType:     settings.RunType,
		sleep:       time.Sleep,
		definitions: make(map[string]BuildFunc),
		instances:   make(map[string]selenium.WebDriver),
	}
	if f.settings.Highlight == (HighlightSettings{}) {
		f.settings.Highlight = DefaultHighlightSettings()
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	if f.strategies == nil {
		f.strategies = DefaultStrategies(settings.BrowserArgs, f.driverOutput, f.serviceOpts...)
	}
	return f, nil
}

// RunType returns the run type used by RegisterKind.
func (f *Factory) RunType() RunType {
	return f.runType
}

// SetRunType sets the run type from a token; see ParseRunType.
func (f *Factory) SetRunType(token string) {
	f.runType = ParseRunType(token)
}

// CurrentDriverName returns the name of the current driver, or "" if none has
// been registered yet.
func (f *Factory) CurrentDriverName() string {
	return f.current
}

// HasDrivers reports whether any driver is registered.
func (f *Factory) HasDrivers() bool {
	return len(f.definitions) > 0
}

// HasRunDrivers reports whether any registered driver is currently running.
func (f *Factory) HasRunDrivers() bool {
	return len(f.instances) > 0
}

// RegisterDriver registers build under the name "DriverN", where N is one more
// than the number of registered drivers, and makes it current.
func (f *Factory) RegisterDriver(build BuildFunc) (string, error) {
	return f.RegisterNamedDriver(fmt.Sprintf("Driver%d", len(f.definitions)+1), build)
}

// RegisterNamedDriver registers build under name and makes it current. It
// fails if name is already registered.
func (f *Factory) RegisterNamedDriver(name string, build BuildFunc) (string, error) {
	if _, ok := f.definitions[name]; ok {
		return "", &Error{Op: "register", Code: DuplicateDefinition, Name: name}
	}
	f.definitions[name] = build
	f.current = name
	glog.V(1).Infof("Registered driver %q", name)
	return name, nil
}

// RegisterKind registers a driver of kind, locally or remotely depending on
// the run type.
func (f *Factory) RegisterKind(kind Kind) (string, error) {
	if f.runType == Remote {
		return f.RegisterRemoteDriver(kind)
	}
	return f.RegisterLocalDriver(kind)
}

// RegisterKindName registers a local driver of the kind whose canonical name
// is name.
func (f *Factory) RegisterKindName(name string) (string, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return "", &Error{Op: "register", Code: UnknownKind, Name: name, Err: err}
	}
	return f.RegisterLocalDriver(kind)
}

// RegisterLocalDriver registers a driver of kind started from the configured
// driver path. The name is the kind's canonical name, suffixed with a number
// if that name is taken.
func (f *Factory) RegisterLocalDriver(kind Kind) (string, error) {
	s, ok := f.strategies[kind]
	if !ok {
		return "", &Error{Op: "register", Code: UnknownKind, Name: kind.String()}
	}
	path := f.settings.DriverPath
	return f.RegisterNamedDriver(f.resolveName(kind.String()), func() (selenium.WebDriver, error) {
		wd, err := s.Local(path)
		if err != nil || wd == nil {
			return wd, err
		}
		return f.applySettings(wd)
	})
}

// RegisterRemoteDriver registers a driver of kind on the configured remote
// server under the name "Remote_" followed by the kind's canonical name.
//
// Remote drivers are returned as the server created them: the window is not
// maximized and no implicit wait is set.
func (f *Factory) RegisterRemoteDriver(kind Kind) (string, error) {
	s, ok := f.strategies[kind]
	if !ok {
		return "", &Error{Op: "register", Code: UnknownKind, Name: kind.String()}
	}
	name := "Remote_" + kind.String()
	caps, err := f.remoteCapabilities(kind)
	if err != nil {
		return "", &Error{Op: "register", Code: ConstructionFailed, Name: name, Err: err}
	}
	endpoint := f.settings.RemoteURL
	return f.RegisterNamedDriver(name, func() (selenium.WebDriver, error) {
		return s.Remote(endpoint, caps)
	})
}

func (f *Factory) remoteCapabilities(kind Kind) (selenium.Capabilities, error) {
	caps := selenium.Capabilities{
		"browserName": kind.String(),
		"version":     "",
		"javaScript":  true,
	}
	if v := f.settings.BrowserVersion; v != "" {
		if _, err := semver.ParseTolerant(v); err != nil {
			return nil, fmt.Errorf("invalid browser version %q: %v", v, err)
		}
		caps["version"] = v
	}
	if f.settings.Sauce != nil {
		m, err := f.settings.Sauce.ToMap()
		if err != nil {
			return nil, fmt.Errorf("sauce capabilities: %v", err)
		}
		for k, v := range m {
			caps[k] = v
		}
	}
	return caps, nil
}

// applySettings maximizes the window of a new local driver and sets its
// implicit wait. On failure the driver is quit.
func (f *Factory) applySettings(wd selenium.WebDriver) (selenium.WebDriver, error) {
	err := wd.MaximizeWindow("")
	if err == nil {
		err = wd.SetImplicitWaitTimeout(f.settings.implicitWait())
	}
	if err != nil {
		if qerr := wd.Quit(); qerr != nil {
			glog.Warningf("Error quitting half-configured driver: %v", qerr)
		}
		return nil, err
	}
	return wd, nil
}

// GetDriver returns the current driver, constructing it if needed. If no
// driver has been registered, a local Chrome driver is registered first.
func (f *Factory) GetDriver() (selenium.WebDriver, error) {
	if f.current == "" {
		return f.getOrCreateDefault()
	}
	return f.GetDriverByName(f.current)
}

// getOrCreateDefault registers a local Chrome driver, which becomes current,
// and returns it.
func (f *Factory) getOrCreateDefault() (selenium.WebDriver, error) {
	name, err := f.RegisterLocalDriver(Chrome)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("No driver registered, using default %q", name)
	return f.GetDriverByName(name)
}

// GetDriverByKind returns the driver registered under the canonical name of
// kind.
func (f *Factory) GetDriverByKind(kind Kind) (selenium.WebDriver, error) {
	return f.GetDriverByName(kind.String())
}

// GetDriverByName returns the driver registered under name, constructing it on
// first use. Later calls return the same driver until it is closed.
func (f *Factory) GetDriverByName(name string) (selenium.WebDriver, error) {
	build, ok := f.definitions[name]
	if !ok {
		return nil, &Error{Op: "get", Code: UnknownDefinition, Name: name}
	}
	if wd, ok := f.instances[name]; ok {
		return wd, nil
	}
	wd, err := build()
	if err == nil && wd == nil {
		err = errors.New("no driver returned")
	}
	if err != nil {
		return nil, &Error{Op: "get", Code: ConstructionFailed, Name: name, Err: err}
	}
	f.instances[name] = wd
	glog.V(1).Infof("Started driver %q", name)
	return wd, nil
}

// SwitchToDriver makes name the current driver. It does not start or stop any
// driver.
func (f *Factory) SwitchToDriver(name string) error {
	if _, ok := f.definitions[name]; !ok {
		return &Error{Op: "switch", Code: UnknownDefinition, Name: name}
	}
	f.current = name
	glog.V(1).Infof("Switched to driver %q", name)
	return nil
}

// ReopenDriver quits the current driver and starts it again.
func (f *Factory) ReopenDriver() error {
	if f.current == "" {
		_, err := f.getOrCreateDefault()
		return err
	}
	return f.ReopenDriverByName(f.current)
}

// ReopenDriverByName quits the driver registered under name, if it is
// running, and forgets it. Quitting ends the session and stops any driver
// process started for it. It then gets the current driver, which restarts
// name only when name is current.
//
// Unlike a silent no-op, a name that was never registered is reported as an
// UnknownDefinition error and nothing is quit or started.
func (f *Factory) ReopenDriverByName(name string) error {
	if _, ok := f.definitions[name]; !ok {
		return &Error{Op: "reopen", Code: UnknownDefinition, Name: name}
	}
	var qerr error
	if wd, ok := f.instances[name]; ok {
		delete(f.instances, name)
		if qerr = wd.Quit(); qerr != nil {
			glog.Warningf("Error quitting driver %q: %v", name, qerr)
		}
		glog.Infof("Quit driver %q", name)
	}
	if _, err := f.GetDriver(); err != nil {
		return err
	}
	return qerr
}

// Close quits every running driver. Registrations are kept, so later Get
// calls start new drivers. All drivers are quit even if some fail; the
// failures are returned together.
func (f *Factory) Close() error {
	var errs []error
	for name, wd := range f.instances {
		if err := wd.Quit(); err != nil {
			glog.Warningf("Error quitting driver %q: %v", name, err)
			errs = append(errs, fmt.Errorf("quit %q: %w", name, err))
		}
		glog.Infof("Quit driver %q", name)
	}
	f.instances = make(map[string]selenium.WebDriver)
	return errors.Join(errs...)
}

// Matching returns the elements accepted by ElementSearchCriteria, in order.
func (f *Factory) Matching(elements []selenium.WebElement) ([]selenium.WebElement, error) {
	var out []selenium.WebElement
	for _, el := range elements {
		ok, err := f.ElementSearchCriteria(el)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, el)
		}
	}
	return out, nil
}

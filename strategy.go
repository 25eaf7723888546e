package driverfactory

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
)

// LocalFunc constructs a driver from a local driver binary path.
type LocalFunc func(path string) (selenium.WebDriver, error)

// RemoteFunc constructs a driver connected to a remote Selenium server.
type RemoteFunc func(endpoint string, caps selenium.Capabilities) (selenium.WebDriver, error)

// Strategy holds the two ways of constructing a driver of one kind.
type Strategy struct {
	Local  LocalFunc
	Remote RemoteFunc
}

// StrategyTable maps each kind to its construction strategy.
type StrategyTable map[Kind]Strategy

// DefaultStrategies returns the strategies used by New when none are given.
// Local drivers start their driver binary, logging to output when it is not
// nil, and pass browserArgs to Chrome and Firefox. The chromedriver and
// geckodriver services also get opts.
func DefaultStrategies(browserArgs []string, output io.Writer, opts ...selenium.ServiceOption) StrategyTable {
	t := make(StrategyTable)
	for _, k := range Kinds() {
		t[k] = Strategy{
			Local:  localStrategy(k, browserArgs, output, opts),
			Remote: NewRemote,
		}
	}
	return t
}

// NewRemote connects to the Selenium server at endpoint. An empty endpoint
// means selenium.DefaultURLPrefix.
func NewRemote(endpoint string, caps selenium.Capabilities) (selenium.WebDriver, error) {
	return selenium.NewRemote(caps, endpoint)
}

// localCapabilities are the capabilities requested from a locally started
// driver of kind.
func localCapabilities(kind Kind, browserArgs []string) selenium.Capabilities {
	caps := selenium.Capabilities{"browserName": kind.String()}
	switch kind {
	case Chrome:
		caps.AddChrome(chrome.Capabilities{
			Args: browserArgs,
			W3C:  true,
		})
	case Firefox:
		caps.AddFirefox(firefox.Capabilities{
			Args: browserArgs,
		})
	}
	return caps
}

func localStrategy(kind Kind, browserArgs []string, output io.Writer, opts []selenium.ServiceOption) LocalFunc {
	return func(path string) (selenium.WebDriver, error) {
		bin, err := resolveBinary(kind, path)
		if err != nil {
			return nil, fmt.Errorf("locating %s driver: %v", kind, err)
		}
		port, err := pickUnusedPort()
		if err != nil {
			return nil, err
		}
		svc, addr, err := startService(kind, bin, port, output, opts)
		if err != nil {
			return nil, err
		}
		glog.V(1).Infof("Started %s driver service %q at %s", kind, bin, addr)
		wd, err := selenium.NewRemote(localCapabilities(kind, browserArgs), addr)
		if err != nil {
			if serr := stopService(svc); serr != nil {
				glog.Warningf("Error stopping %s driver service: %v", kind, serr)
			}
			return nil, err
		}
		return &serviceDriver{WebDriver: wd, kind: kind, service: svc}, nil
	}
}

// serviceDriver is a session on a driver process that this package started.
// Quitting the session also stops the process.
type serviceDriver struct {
	selenium.WebDriver
	kind    Kind
	service stopper
}

func (d *serviceDriver) Quit() error {
	err := d.WebDriver.Quit()
	if serr := stopService(d.service); serr != nil {
		glog.Warningf("Error stopping %s driver service: %v", d.kind, serr)
		if err == nil {
			err = serr
		}
	}
	return err
}

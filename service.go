package driverfactory

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"
)

// serviceStopTimeout bounds how long stopping a driver process may take.
var serviceStopTimeout = 10 * time.Second

// stopper is a running driver process: a *selenium.Service or an ieService.
type stopper interface {
	Stop() error
}

// startService starts the driver binary of kind at path on port and returns
// the process together with the WebDriver URL prefix it serves.
func startService(kind Kind, path string, port int, output io.Writer, opts []selenium.ServiceOption) (stopper, string, error) {
	if output != nil {
		opts = append(opts[:len(opts):len(opts)], selenium.Output(output))
	}
	switch kind {
	case Chrome:
		svc, err := selenium.NewChromeDriverService(path, port, opts...)
		if err != nil {
			return nil, "", err
		}
		return svc, fmt.Sprintf("http://localhost:%d/wd/hub", port), nil
	case Firefox:
		svc, err := selenium.NewGeckoDriverService(path, port, opts...)
		if err != nil {
			return nil, "", err
		}
		return svc, fmt.Sprintf("http://localhost:%d", port), nil
	case IE:
		svc, err := startIEService(path, port, output)
		if err != nil {
			return nil, "", err
		}
		return svc, svc.addr, nil
	}
	return nil, "", &Error{Op: "start service", Code: UnknownKind, Name: kind.String()}
}

// stopService stops svc, giving up after serviceStopTimeout.
func stopService(svc stopper) error {
	done := make(chan error, 1)
	go func() { done <- svc.Stop() }()
	select {
	case err := <-done:
		return err
	case <-time.After(serviceStopTimeout):
		return fmt.Errorf("driver service did not stop within %v", serviceStopTimeout)
	}
}

// ieService runs IEDriverServer, which selenium has no service constructor
// for.
type ieService struct {
	addr string
	cmd  *exec.Cmd
}

func ieCommand(path string, port int, output io.Writer) *exec.Cmd {
	cmd := exec.Command(path, "/port="+strconv.Itoa(port))
	cmd.Stdout = output
	cmd.Stderr = output
	return cmd
}

func startIEService(path string, port int, output io.Writer) (*ieService, error) {
	s := &ieService{
		addr: fmt.Sprintf("http://localhost:%d", port),
		cmd:  ieCommand(path, port, output),
	}
	if err := s.cmd.Start(); err != nil {
		return nil, err
	}
	for i := 0; i < 30; i++ {
		time.Sleep(time.Second)
		resp, err := http.Get(s.addr + "/status")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return s, nil
			}
		}
	}
	if err := s.Stop(); err != nil {
		glog.Warningf("Error stopping IE driver service: %v", err)
	}
	return nil, fmt.Errorf("IE driver did not respond on port %d", port)
}

// Stop kills the driver process and waits a bounded time for it to exit.
func (s *ieService) Stop() error {
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()
	select {
	case err := <-done:
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			return err
		}
	case <-time.After(serviceStopTimeout):
		return fmt.Errorf("IE driver process %d did not exit within %v", s.cmd.Process.Pid, serviceStopTimeout)
	}
	glog.Infof("Stopped IE driver service at %s", s.addr)
	return nil
}

// resolveBinary finds the driver executable for kind given the configured
// driver path: empty searches the PATH, a directory is searched for the
// kind's binary, anything else is taken to be the binary.
func resolveBinary(kind Kind, path string) (string, error) {
	name := kind.binaryName()
	if path == "" {
		return exec.LookPath(name)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return path, nil
	}
	bin := filepath.Join(path, name)
	if _, err := os.Stat(bin); err == nil {
		return bin, nil
	}
	// Windows driver distributions carry the extension.
	if _, err := os.Stat(bin + ".exe"); err == nil {
		return bin + ".exe", nil
	}
	return "", fmt.Errorf("%s not found in %s", name, path)
}

func pickUnusedPort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		return 0, err
	}
	return port, nil
}

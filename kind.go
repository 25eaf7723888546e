package driverfactory

import (
	"fmt"
	"sort"
)

// Kind is a browser engine that the factory knows how to construct.
type Kind int

// The supported browser kinds.
const (
	Chrome Kind = iota
	Firefox
	IE
)

var kindNames = map[Kind]string{
	Chrome:  "chrome",
	Firefox: "firefox",
	IE:      "internet explorer",
}

// String returns the canonical name of the kind. The canonical name is also the
// WebDriver "browserName" capability.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// binaryName is the name of the driver executable for the kind.
func (k Kind) binaryName() string {
	switch k {
	case Firefox:
		return "geckodriver"
	case IE:
		return "IEDriverServer"
	}
	return "chromedriver"
}

// ParseKind returns the kind whose canonical name is name. The comparison is
// case-sensitive.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, &Error{Op: "parse kind", Code: UnknownKind, Name: name}
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
	return ks
}

// RunType selects how kind-based registrations construct their drivers.
type RunType int

const (
	// Local starts the driver binary on this machine.
	Local RunType = iota
	// Remote connects to a Selenium server or grid.
	Remote
)

func (r RunType) String() string {
	if r == Remote {
		return "remote"
	}
	return "local"
}

// ParseRunType maps a run type token to a RunType. Only "local" and "remote"
// are recognized; every other token, including differently-cased ones, maps to
// Local.
func ParseRunType(token string) RunType {
	switch token {
	case "remote":
		return Remote
	case "local":
		return Local
	}
	return Local
}

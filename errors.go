package driverfactory

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the failures reported by a Factory.
type ErrorCode int

// The error codes returned in Error.Code.
const (
	DuplicateDefinition ErrorCode = iota + 1
	UnknownDefinition
	ConstructionFailed
	UnknownKind
)

// Sentinel errors matching each ErrorCode through errors.Is.
var (
	ErrDuplicateDefinition = errors.New("driver already registered")
	ErrUnknownDefinition   = errors.New("driver not registered")
	ErrConstructionFailed  = errors.New("driver construction failed")
	ErrUnknownKind         = errors.New("unknown driver kind")
)

func (c ErrorCode) sentinel() error {
	switch c {
	case DuplicateDefinition:
		return ErrDuplicateDefinition
	case UnknownDefinition:
		return ErrUnknownDefinition
	case ConstructionFailed:
		return ErrConstructionFailed
	case UnknownKind:
		return ErrUnknownKind
	}
	return nil
}

func (c ErrorCode) String() string {
	if err := c.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error is returned by every failing Factory operation. Name is the driver
// name or kind name the operation was addressing.
type Error struct {
	Op   string
	Code ErrorCode
	Name string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %q: %s", e.Op, e.Name, e.Code)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for e.Code.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Code.sentinel()
}

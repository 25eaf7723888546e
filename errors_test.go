package driverfactory

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMatching(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&Error{Op: "get", Code: ConstructionFailed, Name: "Remote_chrome", Err: cause})

	if !errors.Is(err, ErrConstructionFailed) {
		t.Errorf("errors.Is(%v, ErrConstructionFailed) = false", err)
	}
	if errors.Is(err, ErrUnknownDefinition) {
		t.Errorf("errors.Is(%v, ErrUnknownDefinition) = true", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false", err)
	}
	for _, want := range []string{"get", `"Remote_chrome"`, "driver construction failed", "connection refused"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q does not contain %q", err.Error(), want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{DuplicateDefinition, "driver already registered"},
		{UnknownDefinition, "driver not registered"},
		{ConstructionFailed, "driver construction failed"},
		{UnknownKind, "unknown driver kind"},
		{ErrorCode(0), "ErrorCode(0)"},
	}
	for _, test := range tests {
		if got := test.code.String(); got != test.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", int(test.code), got, test.want)
		}
	}
}

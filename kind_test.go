package driverfactory

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) returned error: %v", k, err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k, got, k)
		}
	}

	for _, name := range []string{"", "Chrome", "ie", "opera"} {
		if _, err := ParseKind(name); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseKind(%q) returned %v, want ErrUnknownKind", name, err)
		}
	}
}

func TestKinds(t *testing.T) {
	var got []string
	for _, k := range Kinds() {
		got = append(got, k.String())
	}
	want := []string{"chrome", "firefox", "internet explorer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Kinds() returned diff (-want/+got):\n%s", diff)
	}
	if got, want := Kind(42).String(), "Kind(42)"; got != want {
		t.Errorf("Kind(42).String() = %q, want %q", got, want)
	}
}

func TestParseRunType(t *testing.T) {
	tests := []struct {
		in   string
		want RunType
	}{
		{in: "local", want: Local},
		{in: "remote", want: Remote},
		{in: "", want: Local},
		{in: "REMOTE", want: Local},
		{in: "grid", want: Local},
	}

	for _, test := range tests {
		if got := ParseRunType(test.in); got != test.want {
			t.Errorf("ParseRunType(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

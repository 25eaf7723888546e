package driverfactory

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/wanmail/driverfactory/internal/seleniumtest"
)

func TestHighlightWith(t *testing.T) {
	var slept []time.Duration
	f, err := New(Settings{}, WithSleep(func(d time.Duration) {
		slept = append(slept, d)
	}))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	tests := []struct {
		desc      string
		settings  *HighlightSettings
		wantStyle string
		wantSleep []time.Duration
	}{
		{
			desc:      "zero timeout",
			settings:  &HighlightSettings{FrameColor: "red", BgColor: "yellow"},
			wantStyle: "border: 3px solid red; background-color: yellow;",
		},
		{
			desc:      "explicit timeout",
			settings:  &HighlightSettings{FrameColor: "blue", BgColor: "white", Timeout: 3 * time.Second},
			wantStyle: "border: 3px solid blue; background-color: white;",
			wantSleep: []time.Duration{3 * time.Second},
		},
		{
			desc:      "nil settings use the defaults",
			wantStyle: "border: 3px solid red; background-color: yellow;",
			wantSleep: []time.Duration{2 * time.Second},
		},
	}

	for _, test := range tests {
		slept = nil
		wd := &seleniumtest.Driver{}
		el := seleniumtest.NewElement("color: green;")
		if err := f.HighlightWith(NewStyleElement(wd, el), test.settings); err != nil {
			t.Fatalf("%s: HighlightWith() returned error: %v", test.desc, err)
		}
		if diff := cmp.Diff([]string{test.wantStyle, "color: green;"}, el.Styles); diff != "" {
			t.Errorf("%s: styles returned diff (-want/+got):\n%s", test.desc, diff)
		}
		if diff := cmp.Diff(test.wantSleep, slept); diff != "" {
			t.Errorf("%s: sleeps returned diff (-want/+got):\n%s", test.desc, diff)
		}
	}
}

func TestHighlightUsesFactorySettings(t *testing.T) {
	var slept time.Duration
	settings := Settings{Highlight: HighlightSettings{FrameColor: "green", BgColor: "pink", Timeout: time.Second}}
	f, err := New(settings, WithSleep(func(d time.Duration) { slept = d }))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	wd := &seleniumtest.Driver{}
	el := seleniumtest.NewElement("")
	if err := f.Highlight(NewStyleElement(wd, el)); err != nil {
		t.Fatalf("Highlight() returned error: %v", err)
	}
	want := []string{"border: 3px solid green; background-color: pink;", ""}
	if diff := cmp.Diff(want, el.Styles); diff != "" {
		t.Fatalf("styles returned diff (-want/+got):\n%s", diff)
	}
	if slept != time.Second {
		t.Fatalf("slept %v, want %v", slept, time.Second)
	}
}

func TestHighlightErrors(t *testing.T) {
	f, err := New(Settings{}, WithSleep(func(time.Duration) {}))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	wd := &seleniumtest.Driver{}

	el := seleniumtest.NewElement("")
	el.GetErr = errors.New("stale element")
	if err := f.Highlight(NewStyleElement(wd, el)); err == nil {
		t.Errorf("Highlight() on an unreadable element returned no error")
	}
	if len(el.Styles) != 0 {
		t.Errorf("unreadable element was restyled: %v", el.Styles)
	}

	el = seleniumtest.NewElement("")
	el.SetErr = errors.New("javascript error")
	if err := f.Highlight(NewStyleElement(wd, el)); err == nil {
		t.Errorf("Highlight() on an unwritable element returned no error")
	}
}

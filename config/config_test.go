package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium/sauce"

	"github.com/wanmail/driverfactory"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "driverfactory.yml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("os.WriteFile(%q) returned error: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
run_type: remote
remote_url: http://grid:4444/wd/hub
browser_version: "91"
browser_args: ["--headless"]
timeouts:
  wait_element_sec: 10
highlight:
  frame_color: blue
sauce:
  platform: Windows 10
  tags: [smoke]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}

	want := driverfactory.Settings{
		RunType:        driverfactory.Remote,
		RemoteURL:      "http://grid:4444/wd/hub",
		ImplicitWait:   10 * time.Second,
		BrowserArgs:    []string{"--headless"},
		BrowserVersion: "91",
		Sauce: &sauce.Capabilities{
			Platform: "Windows 10",
			Tags:     []string{"smoke"},
		},
		Highlight: driverfactory.HighlightSettings{
			FrameColor: "blue",
			BgColor:    "yellow",
			Timeout:    2 * time.Second,
		},
	}
	if diff := cmp.Diff(want, cfg.Settings()); diff != "" {
		t.Fatalf("Settings() returned diff (-want/+got):\n%s", diff)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "driver_path: /opt/drivers\n"))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	s := cfg.Settings()
	if s.RunType != driverfactory.Local {
		t.Errorf("RunType = %v, want %v", s.RunType, driverfactory.Local)
	}
	if s.DriverPath != "/opt/drivers" {
		t.Errorf("DriverPath = %q, want %q", s.DriverPath, "/opt/drivers")
	}
	if s.ImplicitWait != driverfactory.DefaultImplicitWait {
		t.Errorf("ImplicitWait = %v, want %v", s.ImplicitWait, driverfactory.DefaultImplicitWait)
	}
	if diff := cmp.Diff(driverfactory.DefaultHighlightSettings(), s.Highlight); diff != "" {
		t.Errorf("Highlight returned diff (-want/+got):\n%s", diff)
	}
	if s.Sauce != nil {
		t.Errorf("Sauce = %+v, want nil", s.Sauce)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		desc string
		data string
	}{
		{desc: "bad YAML", data: "run_type: [local"},
		{desc: "negative wait", data: "timeouts:\n  wait_element_sec: -1\n"},
		{desc: "negative highlight", data: "highlight:\n  timeout_sec: -3\n"},
		{desc: "bad version", data: "browser_version: latest\n"},
	}
	for _, test := range tests {
		if _, err := Load(writeConfig(t, test.data)); err == nil {
			t.Errorf("%s: Load() returned no error", test.desc)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Errorf("Load() of a missing file returned no error")
	}
}

func TestUnknownRunTypeIsLocal(t *testing.T) {
	cfg, err := Load(writeConfig(t, "run_type: grid\n"))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got := cfg.Settings().RunType; got != driverfactory.Local {
		t.Fatalf("RunType = %v, want %v", got, driverfactory.Local)
	}
}

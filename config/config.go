// Package config loads driverfactory settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/blang/semver"
	"github.com/tebeka/selenium/sauce"
	"gopkg.in/yaml.v3"

	"github.com/wanmail/driverfactory"
)

// Config mirrors the YAML settings file.
type Config struct {
	RunType        string    `yaml:"run_type"`
	DriverPath     string    `yaml:"driver_path"`
	RemoteURL      string    `yaml:"remote_url"`
	BrowserVersion string    `yaml:"browser_version"`
	BrowserArgs    []string  `yaml:"browser_args"`
	Timeouts       Timeouts  `yaml:"timeouts"`
	Highlight      Highlight `yaml:"highlight"`
	Sauce          *Sauce    `yaml:"sauce"`
}

// Timeouts holds the driver timeouts, in seconds.
type Timeouts struct {
	WaitElementSec int `yaml:"wait_element_sec"`
}

// Highlight holds the highlight defaults.
type Highlight struct {
	FrameColor string `yaml:"frame_color"`
	BgColor    string `yaml:"bg_color"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// Sauce selects the Sauce Labs platform for remote drivers.
type Sauce struct {
	Platform         string   `yaml:"platform"`
	ScreenResolution string   `yaml:"screen_resolution"`
	Build            string   `yaml:"build"`
	Tags             []string `yaml:"tags"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	h := driverfactory.DefaultHighlightSettings()
	return &Config{
		RunType: driverfactory.Local.String(),
		Timeouts: Timeouts{
			WaitElementSec: int(driverfactory.DefaultImplicitWait / time.Second),
		},
		Highlight: Highlight{
			FrameColor: h.FrameColor,
			BgColor:    h.BgColor,
			TimeoutSec: int(h.Timeout / time.Second),
		},
	}
}

// Load reads the YAML file at path over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a Factory cannot interpret. Unknown run types
// are not an error: they select a local run.
func (c *Config) Validate() error {
	if c.Timeouts.WaitElementSec < 0 {
		return fmt.Errorf("timeouts.wait_element_sec must not be negative, got %d", c.Timeouts.WaitElementSec)
	}
	if c.Highlight.TimeoutSec < 0 {
		return fmt.Errorf("highlight.timeout_sec must not be negative, got %d", c.Highlight.TimeoutSec)
	}
	if c.BrowserVersion != "" {
		if _, err := semver.ParseTolerant(c.BrowserVersion); err != nil {
			return fmt.Errorf("browser_version %q: %w", c.BrowserVersion, err)
		}
	}
	return nil
}

// Settings converts the configuration into factory settings.
func (c *Config) Settings() driverfactory.Settings {
	s := driverfactory.Settings{
		RunType:        driverfactory.ParseRunType(c.RunType),
		DriverPath:     c.DriverPath,
		RemoteURL:      c.RemoteURL,
		ImplicitWait:   time.Duration(c.Timeouts.WaitElementSec) * time.Second,
		BrowserArgs:    c.BrowserArgs,
		BrowserVersion: c.BrowserVersion,
		Highlight: driverfactory.HighlightSettings{
			FrameColor: c.Highlight.FrameColor,
			BgColor:    c.Highlight.BgColor,
			Timeout:    time.Duration(c.Highlight.TimeoutSec) * time.Second,
		},
	}
	if c.Sauce != nil {
		s.Sauce = &sauce.Capabilities{
			Platform:         c.Sauce.Platform,
			ScreenResolution: c.Sauce.ScreenResolution,
			BuildNumber:      c.Sauce.Build,
			Tags:             c.Sauce.Tags,
		}
	}
	return s
}

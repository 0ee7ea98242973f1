package pixel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config holds window and driver settings, loadable from a JSON file.
type Config struct {
	// Window
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Scale  int    `json:"scale"`

	// Diagnostics
	Debug   bool `json:"debug"`
	ShowFPS bool `json:"show_fps"`

	// Screenshots
	ScreenshotDir    string `json:"screenshot_dir"`
	ScreenshotFormat string `json:"screenshot_format"`
}

// Flags holds CLI flag values that override config file settings. Zero
// values leave the file setting alone.
type Flags struct {
	Width            int
	Height           int
	Scale            int
	Debug            bool
	ShowFPS          bool
	ScreenshotDir    string
	ScreenshotFormat string
}

// DefaultConfig returns a 640×360 surface shown at 2× scale.
func DefaultConfig() Config {
	return Config{
		Title:            "Pixel Engine",
		Width:            640,
		Height:           360,
		Scale:            2,
		ScreenshotDir:    "screenshots",
		ScreenshotFormat: FormatPNG,
	}
}

// LoadConfig reads a JSON config file. Fields not set in the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies CLI flags over the loaded values and fills empty fields
// with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Debug {
		c.Debug = true
	}
	if flags.ShowFPS {
		c.ShowFPS = true
	}
	if flags.ScreenshotDir != "" {
		c.ScreenshotDir = flags.ScreenshotDir
	}
	if flags.ScreenshotFormat != "" {
		c.ScreenshotFormat = flags.ScreenshotFormat
	}

	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = def.ScreenshotDir
	}
	if c.ScreenshotFormat == "" {
		c.ScreenshotFormat = def.ScreenshotFormat
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: surface size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("config: scale %d must be positive", c.Scale))
	}
	if c.ScreenshotFormat != FormatPNG && c.ScreenshotFormat != FormatWebP {
		errs = append(errs, fmt.Errorf("config: screenshot format %q must be %q or %q",
			c.ScreenshotFormat, FormatPNG, FormatWebP))
	}
	return errors.Join(errs...)
}

// Package config holds the logo's runtime settings.
//
// Settings are layered: Default, then an optional YAML file (Load), then an optional .env file
// and DISCUBE_* environment variables (ApplyEnv). Command-line flags are applied last by main.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config holds all logo settings.
type Config struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Fixed  bool `yaml:"fixed"` // keep Width×Height instead of following the window

	// Radius overrides the width breakpoint when non-zero.
	Radius   float64 `yaml:"radius"`
	Segments int     `yaml:"segments"`

	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Background  string  `yaml:"background"` // window backdrop; exports stay transparent

	TPS        int    `yaml:"tps"`
	SaveName   string `yaml:"save_name"`
	SaveButton bool   `yaml:"save_button"`
	Seed       int64  `yaml:"seed"` // 0 seeds from the clock

	Drift DriftConfig `yaml:"drift"`
}

// DriftConfig bounds the per-axis noise cursor speed.
type DriftConfig struct {
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DISCUBE_"

var ErrInvalid = errors.New("config: invalid")

// Default returns the standalone 500×500 page settings.
func Default() Config {
	return Config{
		Width:       500,
		Height:      500,
		Segments:    100,
		Stroke:      "#151515",
		StrokeWidth: 8,
		Background:  "#ffffff",
		TPS:         60,
		SaveName:    "discube-logo.png",
		SaveButton:  true,
		Drift: DriftConfig{
			MinSpeed: 0.001,
			MaxSpeed: 0.002,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv loads envFile (if it exists) into the process environment and then applies any
// DISCUBE_* variables. Variables already set in the environment win over the file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("config: load %s: %w", envFile, err)
			}
		}
	}
	return c.applyLookup(os.LookupEnv)
}

func (c *Config) applyLookup(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	flt := func(key string, dst *float64) {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = f
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}

	num("WIDTH", &c.Width)
	num("HEIGHT", &c.Height)
	boolean("FIXED", &c.Fixed)
	flt("RADIUS", &c.Radius)
	num("SEGMENTS", &c.Segments)
	str("STROKE", &c.Stroke)
	flt("STROKE_WIDTH", &c.StrokeWidth)
	str("BACKGROUND", &c.Background)
	num("TPS", &c.TPS)
	str("SAVE_NAME", &c.SaveName)
	boolean("SAVE_BUTTON", &c.SaveButton)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = n
		}
	}
	flt("DRIFT_MIN_SPEED", &c.Drift.MinSpeed)
	flt("DRIFT_MAX_SPEED", &c.Drift.MaxSpeed)

	return errors.Join(errs...)
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Segments <= 0:
		return fmt.Errorf("%w: segments %d", ErrInvalid, c.Segments)
	case c.Radius < 0:
		return fmt.Errorf("%w: radius %v", ErrInvalid, c.Radius)
	case c.StrokeWidth <= 0:
		return fmt.Errorf("%w: stroke width %v", ErrInvalid, c.StrokeWidth)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.Drift.MinSpeed < 0 || c.Drift.MaxSpeed < c.Drift.MinSpeed:
		return fmt.Errorf("%w: drift speed [%v, %v]", ErrInvalid, c.Drift.MinSpeed, c.Drift.MaxSpeed)
	}
	if _, err := ParseColor(c.Stroke); err != nil {
		return err
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// StrokeColor returns the parsed stroke color. Call Validate first.
func (c Config) StrokeColor() color.RGBA {
	col, _ := ParseColor(c.Stroke)
	return col
}

// BackgroundColor returns the parsed background color. Call Validate first.
func (c Config) BackgroundColor() color.RGBA {
	col, _ := ParseColor(c.Background)
	return col
}

// ParseColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := cfg.StrokeColor(); got != (color.RGBA{R: 0x15, G: 0x15, B: 0x15, A: 0xFF}) {
		t.Fatalf("stroke=%v", got)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.yaml")
	data := []byte("width: 800\nstroke: \"#ff0000\"\ndrift:\n  max_speed: 0.004\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 500 {
		t.Fatalf("size=%dx%d", cfg.Width, cfg.Height)
	}
	if cfg.StrokeColor() != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("stroke=%v", cfg.StrokeColor())
	}
	if cfg.Drift.MinSpeed != 0.001 || cfg.Drift.MaxSpeed != 0.004 {
		t.Fatalf("drift=%+v", cfg.Drift)
	}
	if cfg.Segments != 100 {
		t.Fatalf("segments=%d", cfg.Segments)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		"DISCUBE_WIDTH":        "400",
		"DISCUBE_FIXED":        "true",
		"DISCUBE_STROKE_WIDTH": "4.5",
		"DISCUBE_SEED":         "42",
	}
	cfg := Default()
	err := cfg.applyLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatalf("applyLookup: %v", err)
	}
	if cfg.Width != 400 || !cfg.Fixed || cfg.StrokeWidth != 4.5 || cfg.Seed != 42 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestApplyEnvReportsBadValues(t *testing.T) {
	cfg := Default()
	err := cfg.applyLookup(func(k string) (string, bool) {
		if k == "DISCUBE_TPS" {
			return "fast", true
		}
		return "", false
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if cfg.TPS != 60 {
		t.Fatalf("tps changed to %d", cfg.TPS)
	}
}

func TestApplyEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DISCUBE_SEGMENTS=12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DISCUBE_SEGMENTS", "")
	os.Unsetenv("DISCUBE_SEGMENTS")

	cfg := Default()
	if err := cfg.ApplyEnv(path); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Segments != 12 {
		t.Fatalf("segments=%d", cfg.Segments)
	}

	cfg = Default()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing env file: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Segments = -1 },
		func(c *Config) { c.StrokeWidth = 0 },
		func(c *Config) { c.Stroke = "#zzzzzz" },
		func(c *Config) { c.Drift.MaxSpeed = c.Drift.MinSpeed / 2 },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("case %d: err=%v", i, err)
		}
	}
}

func TestParseColorShortForm(t *testing.T) {
	c, err := ParseColor("#fff")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("color=%v", c)
	}
}

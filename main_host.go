package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"discube/app"
	"discube/hal"
	"discube/internal/buildinfo"
	"discube/internal/config"
)

func main() {
	var (
		configPath string
		envFile    string
		termMode   bool
		logPath    string
		version    bool
		headless   hal.HeadlessConfig
	)
	flag.StringVar(&configPath, "config", "", "YAML config file.")
	flag.StringVar(&envFile, "env", ".env", "Env file with DISCUBE_* overrides (ignored if missing).")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless or terminal mode (0 = run forever).")
	flag.BoolVar(&termMode, "term", false, "Render into the terminal.")
	flag.StringVar(&logPath, "log", "", "Log file in terminal mode (default: discard).")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")

	width := flag.Int("width", 0, "Canvas width.")
	height := flag.Int("height", 0, "Canvas height.")
	fixed := flag.Bool("fixed", false, "Keep the canvas size instead of following the window.")
	radius := flag.Float64("radius", 0, "Hexagon radius (0 = breakpoint on width).")
	segments := flag.Int("segments", 0, "Segments per tentacle.")
	seed := flag.Int64("seed", 0, "Drift seed (0 = clock).")
	saveName := flag.String("save", "", "File written by the save action.")
	noButton := flag.Bool("no-button", false, "Hide the on-canvas save button.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg := config.Default()
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			fatal(err)
		}
		cfg = c
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fixed":
			cfg.Fixed = *fixed
		case "radius":
			cfg.Radius = *radius
		case "segments":
			cfg.Segments = *segments
		case "seed":
			cfg.Seed = *seed
		case "save":
			cfg.SaveName = *saveName
		case "no-button":
			cfg.SaveButton = !*noButton
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	switch {
	case headless.Enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		headless.Width, headless.Height = cfg.Width, cfg.Height
		exit(hal.RunHeadless(ctx, newApp, headless))

	case termMode:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		var logw io.Writer
		if logPath != "" {
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				fatal(err)
			}
			defer f.Close()
			logw = f
		}
		exit(hal.RunTerminal(ctx, hal.TerminalConfig{
			TPS:        cfg.TPS,
			Ticks:      headless.Ticks,
			Background: cfg.BackgroundColor(),
			Log:        logw,
		}, newApp))

	default:
		exit(hal.RunWindow(hal.WindowConfig{
			Title:      "discube " + buildinfo.Short(),
			Width:      cfg.Width,
			Height:     cfg.Height,
			Fixed:      cfg.Fixed,
			TPS:        cfg.TPS,
			Background: cfg.BackgroundColor(),
		}, newApp))
	}
}

func exit(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	fatal(err)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

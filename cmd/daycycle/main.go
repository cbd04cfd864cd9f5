// daycycle is a headless CLI for stepping and inspecting the sun controller.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Faultbox/sunlight/internal/config"
	"github.com/Faultbox/sunlight/internal/engine/debug"
	"github.com/Faultbox/sunlight/internal/engine/lighting"
	"github.com/Faultbox/sunlight/internal/logger"
	"github.com/Faultbox/sunlight/internal/report"
)

func main() {
	config.ParseFlags()
	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitWithWriter(cfg.Logging.Level, logFileConfig(cfg), os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "run":
		err = cmdRun(cfg, rest)
	case "at":
		err = cmdAt(cfg, rest)
	case "table":
		err = cmdTable(cfg, rest)
	case "strip":
		err = cmdStrip(cfg, rest)
	case "config":
		err = cmdConfig(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`daycycle - day/night sun controller utility

Usage:
  daycycle [global flags] <command> [options]

Commands:
  run [-dt S] [-steps N] [-plain]    Step the controller and print each frame
  at <degrees> [-plain]              Show the light for one orientation
  table [-n N] [-plain]              Show N orientations across a full day
  strip [-w W] [-h H] [-dir D]       Save a PNG strip of one full day
  config [-o path] [-save]           Print or save the effective configuration

Global flags:
  -config <path>   Config file (default ./sunlight.yaml or user config dir)
  -day <seconds>   Day duration
  -start <deg>     Start orientation (0 = noon, 90 = sunrise, 180 = midnight)
  -debug           Debug logging

Examples:
  daycycle -day 120 run -dt 30 -steps 4
  daycycle at 45
  daycycle table -n 24`)
}

func logFileConfig(cfg *config.Config) logger.FileConfig {
	if cfg.Logging.LogFile == "" {
		return logger.FileConfig{}
	}
	return logger.DefaultFileConfig(cfg.Logging.LogFile)
}

// colorFlag registers -plain and returns a func telling whether to color output.
func colorFlag(fs *flag.FlagSet) func() bool {
	plain := fs.Bool("plain", false, "Disable colored swatches")
	return func() bool { return !*plain && !color.NoColor }
}

func cmdRun(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dt := fs.Float64("dt", cfg.Simulation.StepSeconds, "Seconds per frame")
	steps := fs.Int("steps", cfg.Simulation.Steps, "Number of frames")
	colored := colorFlag(fs)
	fs.Parse(args)

	if *dt < 0 || *steps < 0 {
		return fmt.Errorf("dt and steps must not be negative")
	}

	d, err := lighting.New(cfg.DayCycleSettings(), lighting.WithLogger(logger.Named("daycycle")))
	if err != nil {
		return err
	}

	logger.Debug("simulating",
		zap.Float64("dt", *dt),
		zap.Int("steps", *steps),
		zap.Float64("speed_deg_per_sec", d.RotationSpeed()),
	)
	return report.Simulate(report.NewPrinter(os.Stdout, colored()), d, *dt, *steps)
}

func cmdAt(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("at", flag.ExitOnError)
	colored := colorFlag(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: daycycle at <degrees>")
	}
	deg, err := report.ParseOrientation(fs.Arg(0))
	if err != nil {
		return err
	}

	p := report.NewPrinter(os.Stdout, colored())
	if err := p.Header(); err != nil {
		return err
	}
	return p.Row(-1, 0, report.At(cfg.DayCycleSettings().Appearance, deg))
}

func cmdTable(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	n := fs.Int("n", 24, "Number of orientations")
	colored := colorFlag(fs)
	fs.Parse(args)

	if *n <= 0 {
		return fmt.Errorf("n must be positive, got %d", *n)
	}
	return report.Sweep(report.NewPrinter(os.Stdout, colored()), cfg.DayCycleSettings().Appearance, *n)
}

func cmdStrip(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("strip", flag.ExitOnError)
	width := fs.Int("w", 720, "Image width (one column per orientation step)")
	height := fs.Int("h", 80, "Image height")
	dir := fs.String("dir", cfg.Viewer.ScreenshotDir, "Output directory")
	fs.Parse(args)

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("strip size must be positive, got %dx%d", *width, *height)
	}

	img := report.Strip(cfg.DayCycleSettings().Appearance, *width, *height)
	path, err := debug.NewCapture(*dir, "daycycle_strip").SaveImage(img)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("o", "", "Write to path instead of stdout")
	save := fs.Bool("save", false, "Write to the user config directory")
	fs.Parse(args)

	if *save {
		if err := cfg.Save(); err != nil {
			return err
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return nil
	}
	if *out == "" {
		_, err := cfg.WriteTo(os.Stdout)
		return err
	}
	if err := cfg.SaveTo(*out); err != nil {
		return err
	}
	logger.Info("config saved", zap.String("path", *out))
	return nil
}

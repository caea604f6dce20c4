package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/config"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/gui"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/logutil"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/viz"
)

var (
	dataDir    string
	configFile string
	logFile    string
	logLevel   string
	// Startup overrides, applied over the config file
	pattern string
	density int
	tick    time.Duration
	theme   string
	scale   int
	preset  string
	// Headless output, one frame count per command
	renderCount  int
	exportCount  int
	captureCount int
	sweepCount   int
	format       string
	column       string
	force        bool
	save         bool
	realtime     bool
	jsonOut      string

	cfg     *config.Config
	logSink *os.File
)

// main registers the command tree and runs it. The live terminal view is the
// default when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:               "kaleidoscope",
		Short:             "procedural pattern display for a 128x64 monochrome screen",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logSink != nil {
				logSink.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run(newEngine(), cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".kaleidoscope", "capture directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logFile, "log", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&pattern, "pattern", config.DefaultPattern, "initial pattern")
	pf.IntVar(&density, "density", config.DefaultDensity, "initial density (0-100)")
	pf.DurationVar(&tick, "tick", config.DefaultTick, "frame interval")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.IntVar(&scale, "scale", config.DefaultScale, "window pixel scale (gui) or image scale (export)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pick a pattern or preset, then run the live view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(cfg)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a window",
		Run: func(cmd *cobra.Command, args []string) {
			gui.Run(newEngine(), cfg)
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print braille frames to stdout",
		RunE:  renderFrames,
	}
	renderCmd.Flags().IntVar(&renderCount, "frames", 50, "number of frames")

	exportCmd := &cobra.Command{
		Use:   "export [output]",
		Short: "write frames as gif, png sequence or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportFrames,
	}
	exportCmd.Flags().IntVar(&exportCount, "frames", 30, "number of frames")
	exportCmd.Flags().StringVar(&format, "format", "", "gif, png or svg (default: from file extension)")

	captureCmd := &cobra.Command{
		Use:   "capture",
		Short: "record per-frame metrics into the capture store",
		RunE:  captureRun,
	}
	captureCmd.Flags().IntVar(&captureCount, "frames", 200, "number of frames")
	captureCmd.Flags().StringVar(&jsonOut, "json", "", "also write the capture as JSON to this file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list captures",
		RunE:  listCaptures,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [capture_id]",
		Short: "plot a capture",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCapture,
	}
	plotCmd.Flags().StringVar(&column, "column", "coverage", "coverage, symmetry or density")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [capture_id]",
		Short: "spectrum and period of a capture series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeCapture,
	}
	analyzeCmd.Flags().StringVar(&column, "column", "coverage", "coverage, symmetry or density")

	playCmd := &cobra.Command{
		Use:   "play [script.yaml]",
		Short: "replay a scripted input sequence",
		Args:  cobra.ExactArgs(1),
		RunE:  playScript,
	}
	playCmd.Flags().BoolVar(&realtime, "realtime", false, "wait one tick between frames")
	playCmd.Flags().BoolVar(&save, "save", false, "store the run as a capture")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure the pattern across all density settings",
		RunE:  sweepDensity,
	}
	sweepCmd.Flags().IntVar(&sweepCount, "frames", 50, "frames per density")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list patterns",
		RunE:  listPatterns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, guiCmd, renderCmd, exportCmd, captureCmd, listCmd, plotCmd, analyzeCmd, playCmd, sweepCmd, patternsCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup installs the logger and resolves the startup config:
// defaults, then the config file, then a preset, then explicit flags.
func setup(cmd *cobra.Command, args []string) error {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		logSink = f
		logutil.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: logutil.ParseLevel(logLevel),
		})))
	}

	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
	}
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return err
		}
		p.Apply(c)
	}

	flags := cmd.Flags()
	if flags.Changed("pattern") {
		c.Pattern = pattern
	}
	if flags.Changed("density") {
		c.Density = density
	}
	if flags.Changed("tick") {
		c.Tick = tick
	}
	if flags.Changed("theme") {
		c.Theme = theme
	}
	if flags.Changed("scale") {
		c.Scale = scale
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	logutil.Logger().Debug("config resolved", "pattern", c.Pattern, "density", c.Density,
		"tick", c.Tick, "theme", c.Theme, "file", configFile, "preset", preset)
	return nil
}

func newEngine() *engine.Engine {
	return engine.New(cfg.EngineOptions(nil))
}

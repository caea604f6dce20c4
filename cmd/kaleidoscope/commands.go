package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/analysis"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/automation"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/config"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/export"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/storage"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/tui"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/viz"
)

func renderFrames(cmd *cobra.Command, args []string) error {
	r := tui.NewLiveRenderer(os.Stdout)
	return r.Run(cmd.Context(), newEngine(), renderCount, cfg.Tick)
}

func exportFrames(cmd *cobra.Command, args []string) error {
	out := args[0]
	name := format
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(out), ".")
		if name == "" {
			name = string(export.PNG)
		}
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	on, off := viz.GetTheme(cfg.Theme).Pixels()
	opts := export.Options{Scale: cfg.Scale, Delay: cfg.Tick, On: on, Off: off}
	shots := export.Record(newEngine(), exportCount)
	if len(shots) == 0 {
		return fmt.Errorf("no frames to export")
	}

	switch f {
	case export.GIF:
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := export.WriteGIF(file, shots, opts); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %d frames to %s\n", len(shots), out)
	case export.PNG:
		dir := strings.TrimSuffix(out, filepath.Ext(out))
		paths, err := export.WritePNGs(cmd.Context(), dir, cfg.Pattern, shots, opts)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d frames to %s/\n", len(paths), dir)
	case export.SVG:
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := export.WriteSVG(file, shots[len(shots)-1], opts); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote frame %d to %s\n", len(shots), out)
	}
	return nil
}

func captureRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	c := storage.Record(newEngine(), captureCount, cfg.Tick)
	id, err := st.Save(c)
	if err != nil {
		return err
	}
	if jsonOut != "" {
		if err := storage.ExportJSON(jsonOut, c); err != nil {
			return err
		}
	}

	fmt.Printf("capture: %s\n", id)
	printMetrics(c.Meta.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range []string{"coverage", "symmetry", "flicker"} {
		if v, ok := m[name]; ok {
			fmt.Fprintf(w, "  %s\t%.4f\n", name, v)
		}
	}
	w.Flush()
}

func listCaptures(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	caps, err := st.List()
	if err != nil {
		return err
	}

	if len(caps) == 0 {
		fmt.Println("no captures found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tDENSITY\tFRAMES\tTIME\tCOVERAGE\tSCRIPT")

	for _, c := range caps {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%.3f\t%s\n",
			c.ID,
			c.Pattern,
			c.Density,
			c.Frames,
			c.Timestamp.Format("2006-01-02 15:04:05"),
			c.Metrics["coverage"],
			c.Script,
		)
	}

	return w.Flush()
}

func plotCapture(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(id)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data, err := storage.Series(samples, column)
	if err != nil {
		return err
	}

	fmt.Printf("capture: %s\n", meta.ID)
	fmt.Printf("pattern: %s @ %d\n", meta.Pattern, meta.Density)
	fmt.Printf("samples: %d\n\n", len(samples))

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(column+" per frame"),
	)
	fmt.Println(graph)
	return nil
}

func analyzeCapture(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(id)
	if err != nil {
		return err
	}
	data, err := storage.Series(samples, column)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("pattern: %s @ %d\n\n", meta.Pattern, meta.Density)

	ps := analysis.PowerSpectrum(data)
	if len(ps) > 1 {
		graph := asciigraph.Plot(ps,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum ("+column+")"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	sum := analysis.Summarize(data)
	fmt.Printf("mean: %.4f  stddev: %.4f  min: %.4f  max: %.4f\n", sum.Mean, sum.StdDev, sum.Min, sum.Max)
	period, _ := analysis.DominantPeriod(data)
	if period > 0 {
		fmt.Printf("dominant period: %.2f frames\n", period)
		if d, err := time.ParseDuration(meta.Tick); err == nil && d > 0 {
			fmt.Printf("period: %v\n", time.Duration(period*float64(d)).Round(time.Millisecond))
		}
	} else {
		fmt.Println("no periodic component")
	}
	return nil
}

func playScript(cmd *cobra.Command, args []string) error {
	script, err := automation.LoadScript(args[0])
	if err != nil {
		return err
	}

	opts := automation.Options{}
	if realtime {
		opts.Tick = cfg.Tick
	}
	fmt.Printf("playing %s (%d steps)\n", script.Name, len(script.Steps))
	res, err := automation.RunScript(cmd.Context(), script, newEngine(), opts)
	if err != nil {
		return err
	}

	fmt.Printf("events: %d  redraws: %d  frames: %d\n", res.Events, res.Redraws, res.Final.Frame)
	fmt.Printf("final: %s @ %d, running=%v\n", patterns.NameOf(res.Final.Pattern), res.Final.Density, res.Final.Running)
	printMetrics(res.Capture.Meta.Metrics)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(res.Capture)
		if err != nil {
			return err
		}
		fmt.Printf("capture: %s\n", id)
	}
	return nil
}

func sweepDensity(cmd *cobra.Command, args []string) error {
	idx := cfg.PatternIndex()
	newAt := func(d int) *engine.Engine {
		return engine.New(engine.Options{Pattern: idx, Density: &d})
	}
	res, err := automation.RunSweep(cmd.Context(), newAt, sweepCount)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Printf("sweep: %s, %d frames per point\n\n", cfg.Pattern, sweepCount)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tCOVERAGE\tSYMMETRY\tFLICKER")
	coverage := make([]float64, 0, len(res))
	for _, r := range res {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\n", r.Density, r.Metrics["coverage"], r.Metrics["symmetry"], r.Metrics["flicker"])
		coverage = append(coverage, r.Metrics["coverage"])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(coverage) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(coverage, asciigraph.Height(8), asciigraph.Caption("coverage by density")))
	}
	return err
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tDESCRIPTION")
	for _, info := range patterns.Catalog {
		fmt.Fprintf(w, "%d\t%s\t%s\n", info.Index, info.Name, info.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATTERN\tDENSITY")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%d\n", name, p.Pattern, p.Density)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "kaleidoscope.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

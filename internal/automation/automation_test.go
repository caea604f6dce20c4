package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/storage"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

const scenarioYAML = `
name: scenario
description: cycle twice, thin out, quit
steps:
  - ticks: 2
  - event: next
  - event: next
    ticks: 1
  - event: density-down
    repeat: 3
  - event: next
    action: release
  - event: terminate
    ticks: 5
  - event: next
    ticks: 5
`

func testEngine() *engine.Engine {
	return engine.New(engine.Options{Source: patterns.NewSource(5, func() uint32 { return 3 })})
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "scenario" || len(s.Steps) != 7 {
		t.Errorf("script = %+v", s)
	}
	if s.Steps[3].Repeat != 3 || s.Steps[4].Action != "release" {
		t.Errorf("steps = %+v", s.Steps)
	}
}

func TestParseScriptRejectsUnknownEvent(t *testing.T) {
	_, err := ParseScript([]byte("steps:\n  - event: jump\n"))
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("err = %v, want ErrUnknownEvent", err)
	}
	if _, err := ParseScript([]byte("steps:\n  - event: next\n    action: tap\n")); err == nil {
		t.Error("expected error for unknown action")
	}
	if _, err := ParseScript([]byte("steps:\n  - ticks: -1\n")); err == nil {
		t.Error("expected error for negative ticks")
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScript(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunScriptScenario(t *testing.T) {
	s, err := ParseScript([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	eng := testEngine()
	var frames []uint32
	res, err := RunScript(context.Background(), s, eng, Options{
		OnFrame: func(smp storage.Sample, b *surface.Bitmap) { frames = append(frames, smp.Frame) },
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.Final.Pattern != 2 || res.Final.Density != 20 || res.Final.Running {
		t.Errorf("final = %+v, want pattern 2, density 20, stopped", res.Final)
	}
	// next, next, 3x density-down, release, terminate
	if res.Events != 7 {
		t.Errorf("events = %d, want 7", res.Events)
	}
	if res.Redraws != 5 {
		t.Errorf("redraws = %d, want 5", res.Redraws)
	}
	// 2 ticks + 1 tick + 5 redraw frames; nothing after terminate
	if len(frames) != 8 || res.Final.Frame != 8 {
		t.Errorf("frames = %v, final frame %d", frames, res.Final.Frame)
	}
	for i, f := range frames {
		if f != uint32(i+1) {
			t.Errorf("frame %d = %d", i, f)
		}
	}
	if res.Capture.Meta.Script != "scenario" || res.Capture.Meta.Frames != 8 {
		t.Errorf("capture meta = %+v", res.Capture.Meta)
	}
	select {
	case <-eng.Controller.Redraws():
		t.Error("redraw requests should be consumed by the run")
	default:
	}
}

func TestRunScriptCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Script{Steps: []Step{{Ticks: 3}}}
	if _, err := RunScript(ctx, s, testEngine(), Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRunSweep(t *testing.T) {
	newEngine := func(d int) *engine.Engine {
		return engine.New(engine.Options{
			Pattern: 3,
			Density: &d,
			Source:  patterns.NewSource(1, func() uint32 { return 1 }),
		})
	}
	res, err := RunSweep(context.Background(), newEngine, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 11 {
		t.Fatalf("points = %d, want 11", len(res))
	}
	if res[0].Metrics["coverage"] != 0 {
		t.Errorf("density 0 coverage = %v", res[0].Metrics["coverage"])
	}
	if res[10].Metrics["coverage"] != 1 {
		t.Errorf("density 100 coverage = %v", res[10].Metrics["coverage"])
	}
	for i := 1; i < len(res); i++ {
		if res[i].Density != res[i-1].Density+engine.DensityStep {
			t.Errorf("density step at %d", i)
		}
	}
}

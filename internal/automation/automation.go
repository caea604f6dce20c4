package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/logutil"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/metrics"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/storage"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

var ErrUnknownEvent = errors.New("automation: unknown event")

// Script is a scripted input sequence replayed against an engine.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step delivers one event (optional) and then renders Ticks frames.
type Step struct {
	Event  string `yaml:"event"`
	Action string `yaml:"action"`
	Repeat int    `yaml:"repeat"`
	Ticks  int    `yaml:"ticks"`
}

// LoadScript loads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("automation: parse script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate checks every step names a known event and action.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		if _, _, err := step.event(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Ticks < 0 || step.Repeat < 0 {
			return fmt.Errorf("step %d: negative ticks or repeat", i+1)
		}
	}
	return nil
}

// event resolves the step input. ok is false for tick-only steps.
func (st Step) event() (ev engine.Event, ok bool, err error) {
	if st.Event == "" {
		return engine.Event{}, false, nil
	}
	kind, err := engine.ParseKind(st.Event)
	if err != nil {
		return engine.Event{}, false, fmt.Errorf("%w: %q", ErrUnknownEvent, st.Event)
	}
	action, err := engine.ParseAction(st.Action)
	if err != nil {
		return engine.Event{}, false, err
	}
	return engine.Event{Kind: kind, Action: action}, true, nil
}

// Options pace a run. A zero Tick replays as fast as possible.
type Options struct {
	Tick time.Duration
	// OnFrame, if set, is called after every rendered frame.
	OnFrame func(smp storage.Sample, b *surface.Bitmap)
}

// Result summarizes a run.
type Result struct {
	Events   int
	Redraws  int
	Final    engine.Snapshot
	Capture  *storage.Capture
	Finished bool
}

// RunScript plays every step in order. Redraw requests render a frame
// immediately, like a live host would. The run ends early once the engine
// stops running.
func RunScript(ctx context.Context, script *Script, eng *engine.Engine, opts Options) (*Result, error) {
	log := logutil.Logger()
	rec := storage.NewRecorder(eng, opts.Tick)
	rec.Capture().Meta.Script = script.Name
	res := &Result{}

	frame := func() error {
		smp := rec.Step()
		if opts.OnFrame != nil {
			opts.OnFrame(smp, rec.Bitmap())
		}
		if opts.Tick <= 0 {
			return ctx.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Tick):
			return nil
		}
	}

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		log.Debug("script step", "script", script.Name, "step", i+1, "event", step.Event, "ticks", step.Ticks)

		ev, ok, err := step.event()
		if err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
		if ok {
			n := step.Repeat
			if n == 0 {
				n = 1
			}
			for j := 0; j < n; j++ {
				res.Events++
				if !eng.Controller.Handle(ev) {
					continue
				}
				drain(eng.Controller.Redraws())
				res.Redraws++
				if err := frame(); err != nil {
					return res, err
				}
			}
		}
		for j := 0; j < step.Ticks && eng.State.Running(); j++ {
			if err := frame(); err != nil {
				return res, err
			}
		}
		if !eng.State.Running() {
			log.Info("script terminated engine", "script", script.Name, "step", i+1)
			break
		}
	}

	res.Final = eng.State.Snapshot()
	res.Capture = rec.Capture()
	res.Finished = true
	return res, nil
}

func drain(ch <-chan struct{}) {
	select {
	case <-ch:
	default:
	}
}

// DensitySweep holds the mean metrics of one density setting.
type DensitySweep struct {
	Density int
	Metrics map[string]float64
}

// RunSweep renders frames at every density from 0 to 100 in steps of
// engine.DensityStep for the given pattern and reports the mean metrics.
// newEngine must return a fresh engine for the pattern and density.
func RunSweep(ctx context.Context, newEngine func(density int) *engine.Engine, frames int) ([]DensitySweep, error) {
	results := make([]DensitySweep, 0, engine.MaxDensity/engine.DensityStep+1)
	b := surface.NewBitmap()
	for d := 0; d <= engine.MaxDensity; d += engine.DensityStep {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		eng := newEngine(d)
		ms := metrics.Defaults()
		for i := 0; i < frames; i++ {
			snap := eng.Dispatcher.Render(b)
			for _, m := range ms {
				m.Observe(b, snap.Frame)
			}
		}
		results = append(results, DensitySweep{Density: d, Metrics: metrics.Values(ms)})
		logutil.Logger().Debug("sweep point", "density", d, "frames", frames)
	}
	return results, nil
}

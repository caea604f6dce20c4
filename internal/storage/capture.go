package storage

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/metrics"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

// Recorder samples every frame an engine renders.
type Recorder struct {
	eng     *engine.Engine
	bitmap  *surface.Bitmap
	metrics []metrics.Metric
	capture *Capture
}

func NewRecorder(eng *engine.Engine, tick time.Duration) *Recorder {
	snap := eng.State.Snapshot()
	return &Recorder{
		eng:     eng,
		bitmap:  surface.NewBitmap(),
		metrics: metrics.Defaults(),
		capture: &Capture{Meta: CaptureMetadata{
			Pattern: patterns.NameOf(snap.Pattern),
			Density: snap.Density,
			Tick:    tick.String(),
		}},
	}
}

// Step renders one frame and records it.
func (r *Recorder) Step() Sample {
	snap := r.eng.Dispatcher.Render(r.bitmap)
	for _, m := range r.metrics {
		m.Observe(r.bitmap, snap.Frame)
	}
	smp := Sample{
		Frame:    snap.Frame,
		Pattern:  patterns.NameOf(snap.Pattern),
		Density:  snap.Density,
		Coverage: metrics.Fill(r.bitmap),
		Symmetry: metrics.MirrorAgreement(r.bitmap),
	}
	r.capture.Samples = append(r.capture.Samples, smp)
	return smp
}

// Bitmap returns the most recently rendered frame.
func (r *Recorder) Bitmap() *surface.Bitmap { return r.bitmap }

// Capture returns the recording with aggregate metrics filled in.
func (r *Recorder) Capture() *Capture {
	r.capture.Meta.Frames = len(r.capture.Samples)
	r.capture.Meta.Metrics = metrics.Values(r.metrics)
	return r.capture
}

// Record renders up to n frames, stopping early if the engine terminates.
func Record(eng *engine.Engine, n int, tick time.Duration) *Capture {
	r := NewRecorder(eng, tick)
	for i := 0; i < n && eng.State.Running(); i++ {
		r.Step()
	}
	return r.Capture()
}

func ExportJSON(path string, c *Capture) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, c)
}

func WriteJSON(w io.Writer, c *Capture) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

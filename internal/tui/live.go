package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/logutil"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/metrics"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	home        = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints braille frames without taking over the terminal.
// On a terminal each frame overwrites the previous one; otherwise frames
// are appended one after another.
type LiveRenderer struct {
	out     io.Writer
	inPlace bool
	bitmap  *surface.Bitmap
	canvas  *viz.Canvas
	frames  int
}

// NewLiveRenderer writes to f, redrawing in place when f is a terminal.
func NewLiveRenderer(f *os.File) *LiveRenderer {
	fd := f.Fd()
	return NewLiveRendererTo(f, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

func NewLiveRendererTo(w io.Writer, inPlace bool) *LiveRenderer {
	return &LiveRenderer{
		out:     w,
		inPlace: inPlace,
		bitmap:  surface.NewBitmap(),
		canvas:  viz.NewDisplayCanvas(),
	}
}

// Frame renders one engine frame and prints it.
func (r *LiveRenderer) Frame(eng *engine.Engine) error {
	snap := eng.Dispatcher.Render(r.bitmap)
	r.canvas.Blit(r.bitmap)

	var b strings.Builder
	if r.inPlace {
		if r.frames == 0 {
			b.WriteString(clearScreen)
		} else {
			b.WriteString(home)
		}
	}
	b.WriteString(fmt.Sprintf("%s  density=%d  frame=%d  fill=%.1f%%\n",
		patterns.NameOf(snap.Pattern), snap.Density, snap.Frame, metrics.Fill(r.bitmap)*100))
	b.WriteString(r.canvas.String())
	b.WriteString("\n")
	if !r.inPlace {
		b.WriteString("\n")
	}
	r.frames++
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Run prints n frames spaced by tick, stopping early when ctx is done or the
// engine stops running. A zero tick prints as fast as possible.
func (r *LiveRenderer) Run(ctx context.Context, eng *engine.Engine, n int, tick time.Duration) error {
	r.Start()
	defer r.Stop()

	log := logutil.Logger()
	log.Info("render started", "frames", n, "tick", tick, "in_place", r.inPlace)

	var ticker *time.Ticker
	if tick > 0 {
		ticker = time.NewTicker(tick)
		defer ticker.Stop()
	}
	for i := 0; i < n && eng.State.Running(); i++ {
		if err := r.Frame(eng); err != nil {
			return err
		}
		if ticker == nil || i == n-1 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	log.Info("render finished", "frames", r.frames)
	return nil
}

func (r *LiveRenderer) Start() {
	if r.inPlace {
		io.WriteString(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.inPlace {
		io.WriteString(r.out, showCursor)
	}
}

package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
)

func testEngine() *engine.Engine {
	return engine.New(engine.Options{Source: patterns.NewSource(3, func() uint32 { return 11 })})
}

func TestLiveRendererAppends(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRendererTo(&buf, false)
	eng := testEngine()
	if err := r.Run(context.Background(), eng, 3, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Error("escape sequences written to a non-terminal")
	}
	if got := strings.Count(out, "star  density=50"); got != 3 {
		t.Errorf("header count = %d, want 3", got)
	}
	if !strings.Contains(out, "frame=3") {
		t.Error("missing third frame")
	}
	if eng.State.Frame() != 3 {
		t.Errorf("engine frame = %d, want 3", eng.State.Frame())
	}
	// header + 16 canvas rows + blank separator per frame
	if lines := strings.Count(out, "\n"); lines != 3*18 {
		t.Errorf("lines = %d, want %d", lines, 3*18)
	}
}

func TestLiveRendererInPlace(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRendererTo(&buf, true)
	if err := r.Run(context.Background(), testEngine(), 2, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, hideCursor+clearScreen) {
		t.Error("first frame should hide the cursor and clear")
	}
	// clearScreen ends with the home sequence too
	if strings.Count(out, home) != 2 {
		t.Errorf("home count = %d, want 2", strings.Count(out, home))
	}
	if !strings.HasSuffix(out, showCursor) {
		t.Error("cursor not restored")
	}
}

func TestLiveRendererStopsWhenTerminated(t *testing.T) {
	var buf bytes.Buffer
	eng := testEngine()
	eng.Controller.Handle(engine.Pressed(engine.Terminate))
	if err := NewLiveRendererTo(&buf, false).Run(context.Background(), eng, 5, 0); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("rendered %d bytes after termination", buf.Len())
	}
}

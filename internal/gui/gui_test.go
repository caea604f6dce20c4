package gui

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/go-cmp/cmp"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/config"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
)

func TestFrameClock(t *testing.T) {
	c := newFrameClock(100 * time.Millisecond)
	steps := []struct {
		dt   time.Duration
		want int
	}{
		{16 * time.Millisecond, 0},
		{50 * time.Millisecond, 0},
		{34 * time.Millisecond, 1},
		{250 * time.Millisecond, 2},
		{time.Second, maxCatchUp},
		{99 * time.Millisecond, 0},
	}
	for i, s := range steps {
		if got := c.advance(s.dt); got != s.want {
			t.Errorf("step %d: advance(%v) = %d, want %d", i, s.dt, got, s.want)
		}
	}
}

func TestFrameClockDefaultPeriod(t *testing.T) {
	c := newFrameClock(0)
	if c.period != config.DefaultTick {
		t.Errorf("period = %v, want %v", c.period, config.DefaultTick)
	}
}

func TestPressedKeys(t *testing.T) {
	down := map[int32]bool{rl.KeyEscape: true, rl.KeyLeft: true, rl.KeyQ: true, rl.KeyKpAdd: true}
	got := pressedKeys(func(k int32) bool { return down[k] })
	want := []string{"esc", "left", "+", "q"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pressedKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestPressedKeysMatchKeymap(t *testing.T) {
	km := config.DefaultKeys().Keymap()
	tests := []struct {
		key  int32
		want engine.Kind
	}{
		{rl.KeyEscape, engine.Terminate},
		{rl.KeyBackspace, engine.Terminate},
		{rl.KeyRight, engine.Next},
		{rl.KeyH, engine.Previous},
		{rl.KeyEqual, engine.DensityUp},
		{rl.KeyJ, engine.DensityDown},
		{rl.KeySpace, engine.Ignored},
	}
	for _, tt := range tests {
		names := pressedKeys(func(k int32) bool { return k == tt.key })
		if len(names) != 1 {
			t.Fatalf("key %d produced %v", tt.key, names)
		}
		if got := km.Lookup(names[0]); got != tt.want {
			t.Errorf("key %q -> %v, want %v", names[0], got, tt.want)
		}
	}
}

func TestNewAppDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = "amber"
	a := NewApp(engine.New(engine.Options{}), cfg)
	if a.Scale != config.DefaultScale {
		t.Errorf("scale = %d", a.Scale)
	}
	if a.Theme.Name != "amber" || a.on.R != 0xff || a.on.G != 0xb0 {
		t.Errorf("theme = %s on = %v", a.Theme.Name, a.on)
	}
}

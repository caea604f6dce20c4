package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/config"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/logutil"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/metrics"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/viz"
)

const hudHeight = 40

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColHUD     = rl.NewColor(10, 10, 10, 255)
)

// App draws the display as a scaled pixel grid in a raylib window.
type App struct {
	Engine *engine.Engine
	Keys   config.Keymap
	Scale  int32
	Theme  viz.Theme

	bitmap  *surface.Bitmap
	clock   *frameClock
	last    engine.Snapshot
	on, off rl.Color
}

func NewApp(eng *engine.Engine, cfg *config.Config) *App {
	scale := int32(cfg.Scale)
	if scale < 1 {
		scale = config.DefaultScale
	}
	a := &App{
		Engine: eng,
		Keys:   cfg.Keys.Keymap(),
		Scale:  scale,
		bitmap: surface.NewBitmap(),
		clock:  newFrameClock(cfg.Tick),
		last:   eng.State.Snapshot(),
	}
	a.setTheme(viz.GetTheme(cfg.Theme))
	return a
}

func (a *App) setTheme(t viz.Theme) {
	on, off := t.Pixels()
	a.Theme = t
	a.on = rl.NewColor(on.R, on.G, on.B, on.A)
	a.off = rl.NewColor(off.R, off.G, off.B, off.A)
}

func (a *App) initWindow() {
	rl.InitWindow(surface.Width*a.Scale, surface.Height*a.Scale+hudHeight, "kaleidoscope")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed or the engine stops.
func Run(eng *engine.Engine, cfg *config.Config) {
	a := NewApp(eng, cfg)
	a.initWindow()
	defer rl.CloseWindow()

	log := logutil.Logger()
	log.Info("gui started", "scale", a.Scale, "tick", cfg.Tick, "theme", a.Theme.Name)
	a.RunLoop()
	log.Info("gui stopped", "frame", eng.State.Frame())
}

func (a *App) RunLoop() {
	a.render()
	for !rl.WindowShouldClose() && a.Engine.State.Running() {
		a.Update()
		a.Draw()
	}
}

// Update feeds key presses to the controller and renders any frames due.
func (a *App) Update() {
	for _, name := range pressedKeys(rl.IsKeyPressed) {
		if kind := a.Keys.Lookup(name); kind != engine.Ignored {
			a.Engine.Controller.Handle(engine.Pressed(kind))
			continue
		}
		if name == "t" {
			a.setTheme(viz.NextTheme(a.Theme))
		}
	}
	if !a.Engine.State.Running() {
		return
	}

	select {
	case <-a.Engine.Controller.Redraws():
		a.render()
	default:
	}

	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	for n := a.clock.advance(dt); n > 0; n-- {
		a.render()
	}
}

func (a *App) render() {
	a.last = a.Engine.Dispatcher.Render(a.bitmap)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.off)
	a.drawPixels()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) drawPixels() {
	for y, row := range a.bitmap.Rows() {
		for x, on := range row {
			if on {
				rl.DrawRectangle(int32(x)*a.Scale, int32(y)*a.Scale, a.Scale, a.Scale, a.on)
			}
		}
	}
}

func (a *App) DrawHUD() {
	top := surface.Height * a.Scale
	w := surface.Width * a.Scale
	rl.DrawRectangle(0, top, w, hudHeight, ColHUD)

	status := fmt.Sprintf("%s  density %d  frame %d  fill %.0f%%",
		patterns.NameOf(a.last.Pattern), a.last.Density, a.last.Frame, metrics.Fill(a.bitmap)*100)
	rl.DrawText(status, 10, top+6, 14, ColText)
	rl.DrawText("ARROWS: PATTERN/DENSITY  T: THEME  ESC: QUIT", 10, top+22, 10, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), w-60, top+6, 14, ColTextDim)
}

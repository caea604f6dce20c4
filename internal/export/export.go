// Package export writes rendered frames as GIF animations, PNG sequences
// and SVG stills.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type Format string

const (
	GIF Format = "gif"
	PNG Format = "png"
	SVG Format = "svg"
)

// Formats lists the supported formats.
var Formats = []Format{GIF, PNG, SVG}

func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Options control how frames are drawn.
type Options struct {
	Scale int
	Delay time.Duration
	On    color.RGBA
	Off   color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Scale: 4,
		Delay: 100 * time.Millisecond,
		On:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Off:   color.RGBA{A: 0xff},
	}
}

func (o Options) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

// Record renders n consecutive frames from eng.
func Record(eng *engine.Engine, n int) []*surface.Bitmap {
	frames := make([]*surface.Bitmap, 0, n)
	b := surface.NewBitmap()
	for i := 0; i < n && eng.State.Running(); i++ {
		eng.Dispatcher.Render(b)
		frames = append(frames, b.Clone())
	}
	return frames
}

// ToImage converts b into a two-color paletted image at native size.
// Palette index 0 is the off color.
func ToImage(b *surface.Bitmap, on, off color.RGBA) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, surface.Width, surface.Height), color.Palette{off, on})
	for y, row := range b.Rows() {
		for x, lit := range row {
			if lit {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

package export

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

// WriteSVG draws a single frame. Horizontal runs of lit pixels become one
// rect each.
func WriteSVG(w io.Writer, b *surface.Bitmap, opts Options) error {
	s := opts.scale()
	width, height := surface.Width*s, surface.Height*s

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Title("kaleidoscope")
	canvas.Rect(0, 0, width, height, "fill:"+hex(opts.Off))
	canvas.Gstyle("fill:" + hex(opts.On))
	for y, row := range b.Rows() {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			canvas.Rect(start*s, y*s, (x-start)*s, s)
		}
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error, since svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func hex(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return cf.Hex()
}

package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

// WriteGIF encodes frames as a looping animation.
func WriteGIF(w io.Writer, frames []*surface.Bitmap, opts Options) error {
	s := opts.scale()
	delay := int(opts.Delay.Milliseconds() / 10)
	if delay < 1 {
		delay = 1
	}
	palette := color.Palette{opts.Off, opts.On}

	anim := gif.GIF{LoopCount: 0}
	for _, b := range frames {
		img := image.NewPaletted(image.Rect(0, 0, surface.Width*s, surface.Height*s), palette)
		for y, row := range b.Rows() {
			for x, lit := range row {
				if !lit {
					continue
				}
				for dy := 0; dy < s; dy++ {
					for dx := 0; dx < s; dx++ {
						img.SetColorIndex(x*s+dx, y*s+dy, 1)
					}
				}
			}
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

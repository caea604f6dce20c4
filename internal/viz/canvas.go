package viz

import (
	"strings"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas packs binary pixels into braille characters, 2x4 pixels per cell.
// It implements surface.Surface in pixel coordinates.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas creates a canvas of w x h characters.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// NewDisplayCanvas creates a canvas exactly covering the display.
func NewDisplayCanvas() *Canvas {
	return NewCanvas(surface.Width/2, surface.Height/4)
}

func (c *Canvas) Bounds() (int, int) { return c.Width * 2, c.Height * 4 }

// SetPixel sets a pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) SetPixel(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Blit replaces the canvas contents with b.
func (c *Canvas) Blit(b *surface.Bitmap) {
	c.Clear()
	for y, row := range b.Rows() {
		for x, on := range row {
			if on {
				c.SetPixel(x, y)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

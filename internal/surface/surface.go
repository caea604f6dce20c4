package surface

// Display extent. Constant for the lifetime of the process.
const (
	Width  = 128
	Height = 64
)

// Surface is a fixed-size binary pixel target.
type Surface interface {
	Clear()
	SetPixel(x, y int)
	Bounds() (w, h int)
}

// Bitmap is a Width x Height on/off pixel buffer.
type Bitmap struct {
	pix [Height][Width]bool
	// clears counts Clear calls; hosts use it to verify one clear per frame.
	clears int
}

func NewBitmap() *Bitmap {
	return &Bitmap{}
}

func (b *Bitmap) Bounds() (int, int) { return Width, Height }

func (b *Bitmap) Clear() {
	b.pix = [Height][Width]bool{}
	b.clears++
}

// SetPixel turns a pixel on. Out-of-range coordinates are dropped.
func (b *Bitmap) SetPixel(x, y int) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	b.pix[y][x] = true
}

// At reports whether the pixel at (x, y) is on.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return false
	}
	return b.pix[y][x]
}

// Count returns the number of lit pixels.
func (b *Bitmap) Count() int {
	n := 0
	for y := range b.pix {
		for x := range b.pix[y] {
			if b.pix[y][x] {
				n++
			}
		}
	}
	return n
}

// Clears returns how many times Clear has been called.
func (b *Bitmap) Clears() int { return b.clears }

// CopyFrom overwrites b with the contents of src.
func (b *Bitmap) CopyFrom(src *Bitmap) {
	b.pix = src.pix
}

// Clone returns an independent copy of b.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{}
	c.pix = b.pix
	return c
}

// Rows returns the pixel grid as a slice of rows for read-only iteration.
func (b *Bitmap) Rows() [][]bool {
	rows := make([][]bool, Height)
	for y := range b.pix {
		rows[y] = b.pix[y][:]
	}
	return rows
}

package export

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

// ScaledImage upscales b by opts.Scale without smoothing.
func ScaledImage(b *surface.Bitmap, opts Options) *image.RGBA {
	s := opts.scale()
	src := ToImage(b, opts.On, opts.Off)
	dst := image.NewRGBA(image.Rect(0, 0, surface.Width*s, surface.Height*s))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNGs writes one PNG per frame into dir as <prefix>_0000.png and so on.
// Files are encoded concurrently; the returned paths are in frame order.
func WritePNGs(ctx context.Context, dir, prefix string, frames []*surface.Bitmap, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	paths := make([]string, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, b := range frames {
		path := filepath.Join(dir, fmt.Sprintf("%s_%04d.png", prefix, i))
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writePNG(path, ScaledImage(b, opts))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return f.Close()
}

//go:build ebiten

package render

import (
	"citypulse/internal/heatfield"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a heat field into a one-pixel-per-cell image and draws
// it scaled up.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
	last *heatfield.Field
	dark bool
}

// NewGridPainter allocates a painter for fields of the given size.
func NewGridPainter(size int) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size*size)}
	gp.img = ebiten.NewImage(size, size)
	return gp
}

// Blit draws f onto dst at the given offset, each cell scale pixels wide.
// The pixel upload is skipped when neither the field nor the theme changed.
func (gp *GridPainter) Blit(dst *ebiten.Image, f *heatfield.Field, dark bool, x, y float64, scale int) {
	if f == nil || f.Size() != gp.size {
		return
	}
	if f != gp.last || dark != gp.dark {
		FillFieldRGBA(gp.buf, f, dark)
		gp.img.WritePixels(gp.buf)
		gp.last = f
		gp.dark = dark
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the side length of the painted grid.
func (gp *GridPainter) Size() int { return gp.size }

package render

import (
	"image/color"

	"citypulse/internal/heatfield"
	"citypulse/internal/palette"
)

// FillFieldRGBA converts field intensities into RGBA pixels in buf, one pixel
// per cell in row-major order. buf must hold 4*size*size bytes.
func FillFieldRGBA(buf []byte, f *heatfield.Field, dark bool) {
	fillPaletteRGBA(buf, f.Values(), palette.Colors(dark))
}

// fillPaletteRGBA converts cell intensities into RGBA pixels using a bucket
// palette. When the palette is empty the buffer is cleared to transparent
// black.
func fillPaletteRGBA(buf []byte, cells []float64, colors []color.RGBA) {
	if len(colors) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(colors) - 1
	for i, v := range cells {
		idx := int(palette.BucketFor(v))
		if idx > last {
			idx = last
		}
		base := i * 4
		col := colors[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

package render

import (
	"image/color"
	"testing"

	"citypulse/internal/heatfield"
	"citypulse/internal/palette"
	"citypulse/pkg/rng"
)

func TestFillPaletteRGBA(t *testing.T) {
	colors := []color.RGBA{
		{R: 1, A: 255},
		{G: 2, A: 255},
	}
	buf := make([]byte, 4*3)
	fillPaletteRGBA(buf, []float64{5, 25, 95}, colors)

	want := []byte{
		1, 0, 0, 255,
		0, 2, 0, 255,
		0, 2, 0, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: expected %d, got %d", i, want[i], buf[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	fillPaletteRGBA(buf, []float64{50}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}
}

func TestFillFieldRGBAMatchesPalette(t *testing.T) {
	gen, err := heatfield.NewGenerator(heatfield.DefaultConfig(), rng.NewRNG(8))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	f := gen.Generate()
	buf := make([]byte, 4*f.Size()*f.Size())
	FillFieldRGBA(buf, f, true)

	for r := 0; r < f.Size(); r++ {
		for c := 0; c < f.Size(); c++ {
			want := palette.BucketFor(f.At(r, c)).Color(true)
			base := f.Index(r, c) * 4
			got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
			if got != want {
				t.Fatalf("cell (%d,%d): expected %+v, got %+v", r, c, want, got)
			}
		}
	}
}

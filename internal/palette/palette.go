// Package palette maps congestion intensities to display buckets and colors.
package palette

import (
	"fmt"
	"image/color"
)

// Bucket is one of five congestion display levels.
type Bucket int

const (
	BucketFree Bucket = iota
	BucketLight
	BucketModerate
	BucketHeavy
	BucketSevere
)

// NumBuckets is the number of display buckets.
const NumBuckets = 5

var bucketNames = [NumBuckets]string{"free", "light", "moderate", "heavy", "severe"}

// BucketFor returns the bucket of an intensity in [0, 100]: <20, <40, <60,
// <80 and >=80.
func BucketFor(v float64) Bucket {
	switch {
	case v < 20:
		return BucketFree
	case v < 40:
		return BucketLight
	case v < 60:
		return BucketModerate
	case v < 80:
		return BucketHeavy
	default:
		return BucketSevere
	}
}

func (b Bucket) String() string {
	if b < 0 || int(b) >= NumBuckets {
		return fmt.Sprintf("bucket(%d)", int(b))
	}
	return bucketNames[b]
}

// Swatch is a translucent base color applied over the page background.
type Swatch struct {
	Base    color.NRGBA
	Opacity float64
}

var swatches = [NumBuckets]Swatch{
	{Base: green, Opacity: 0.3},
	{Base: green, Opacity: 0.6},
	{Base: yellow, Opacity: 0.7},
	{Base: orange, Opacity: 0.8},
	{Base: red, Opacity: 0.9},
}

var (
	green  = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
	yellow = color.NRGBA{R: 234, G: 179, B: 8, A: 255}
	orange = color.NRGBA{R: 249, G: 115, B: 22, A: 255}
	red    = color.NRGBA{R: 239, G: 68, B: 68, A: 255}

	lightBackground = color.NRGBA{R: 248, G: 250, B: 252, A: 255}
	darkBackground  = color.NRGBA{R: 15, G: 23, B: 42, A: 255}
)

var (
	lightPalette = buildPalette(false)
	darkPalette  = buildPalette(true)
)

// Background returns the page background for the theme.
func Background(dark bool) color.RGBA {
	if dark {
		return toRGBA(darkBackground)
	}
	return toRGBA(lightBackground)
}

// Foreground returns a text color readable on Background(dark).
func Foreground(dark bool) color.RGBA {
	if dark {
		return color.RGBA{R: 241, G: 245, B: 249, A: 255}
	}
	return color.RGBA{R: 51, G: 65, B: 85, A: 255}
}

// Colors returns the opaque bucket colors for the theme, indexed by Bucket.
func Colors(dark bool) []color.RGBA {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Color returns the opaque color of the bucket for the theme.
func (b Bucket) Color(dark bool) color.RGBA {
	p := Colors(dark)
	if b < 0 {
		b = 0
	}
	if int(b) >= len(p) {
		b = Bucket(len(p) - 1)
	}
	return p[b]
}

// Hex formats a color as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func buildPalette(dark bool) []color.RGBA {
	bg := lightBackground
	if dark {
		bg = darkBackground
	}
	p := make([]color.RGBA, NumBuckets)
	for i, s := range swatches {
		p[i] = toRGBA(blendColors(bg, s.Base, s.Opacity))
	}
	return p
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

//go:build ebiten

package ui

import (
	"image/color"

	"citypulse/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Overlay draws the city layout on top of the heat map: cell gaps, a 3x3
// district grid and the two main roads through the center.
type Overlay struct {
	size      int
	showGaps  bool
	showGrid  bool
	showRoads bool
	gapWidth  float32
	roadWidth float32
	districts int
	gridColor color.RGBA
	roadColor color.RGBA
}

// NewOverlay constructs an overlay for a size x size heat map.
func NewOverlay(size int) *Overlay {
	return &Overlay{
		size:      size,
		showGaps:  true,
		showGrid:  true,
		showRoads: true,
		gapWidth:  2,
		roadWidth: 2,
		districts: 3,
		gridColor: color.RGBA{R: 255, G: 255, B: 255, A: 26},
		roadColor: color.RGBA{R: 255, G: 255, B: 255, A: 51},
	}
}

// Update toggles overlay layers: 1 gaps, 2 districts, 3 roads.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGaps = !o.showGaps
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showRoads = !o.showRoads
	}
}

// Draw renders the enabled layers over area.
func (o *Overlay) Draw(screen *ebiten.Image, area Rect, dark bool) {
	if o.size <= 0 {
		return
	}
	if o.showGaps {
		bg := palette.Background(dark)
		cell := area.W / float32(o.size)
		for i := 1; i < o.size; i++ {
			off := float32(i) * cell
			vector.StrokeLine(screen, area.X+off, area.Y, area.X+off, area.Y+area.H, o.gapWidth, bg, false)
			vector.StrokeLine(screen, area.X, area.Y+off, area.X+area.W, area.Y+off, o.gapWidth, bg, false)
		}
	}
	if o.showGrid {
		vector.StrokeRect(screen, area.X, area.Y, area.W, area.H, 1, o.gridColor, false)
		for i := 1; i < o.districts; i++ {
			fx := area.X + area.W*float32(i)/float32(o.districts)
			fy := area.Y + area.H*float32(i)/float32(o.districts)
			vector.StrokeLine(screen, fx, area.Y, fx, area.Y+area.H, 1, o.gridColor, false)
			vector.StrokeLine(screen, area.X, fy, area.X+area.W, fy, 1, o.gridColor, false)
		}
	}
	if o.showRoads {
		cx := area.X + area.W/2
		cy := area.Y + area.H/2
		vector.StrokeLine(screen, area.X, cy, area.X+area.W, cy, o.roadWidth, o.roadColor, true)
		vector.StrokeLine(screen, cx, area.Y, cx, area.Y+area.H, o.roadWidth, o.roadColor, true)
	}
}

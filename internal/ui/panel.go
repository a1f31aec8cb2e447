//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"citypulse/internal/core"
	"citypulse/internal/heatfield"
	"citypulse/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	lineHeight   = 16
	swatchSize   = 10
	gaugeHeight  = 10
)

// PanelState is everything the side panel shows for one frame.
type PanelState struct {
	Generation uint64
	Gauge      float64
	Stats      heatfield.Stats
	Paused     bool
	Dark       bool
}

// Panel renders the heat map title, congestion gauge, legend and generator
// parameters to the right of the map.
type Panel struct {
	width    int
	provider core.ParameterProvider
	snapshot core.ParameterSnapshot
}

// NewPanel constructs a panel of the given width. The parameter snapshot is
// read once because generator settings do not change at runtime.
func NewPanel(width int, provider core.ParameterProvider) *Panel {
	p := &Panel{width: width, provider: provider}
	if provider != nil {
		p.snapshot = provider.Parameters()
	}
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.width }

// Draw renders the panel with its left edge at x.
func (p *Panel) Draw(screen *ebiten.Image, x int, st PanelState) {
	face := basicfont.Face7x13
	fg := palette.Foreground(st.Dark)
	left := x + panelPadding
	y := panelPadding + lineHeight

	text.Draw(screen, "Traffic Congestion", face, left, y, fg)
	y += lineHeight
	status := fmt.Sprintf("generation %d", st.Generation)
	if st.Paused {
		status += " (paused)"
	}
	text.Draw(screen, status, face, left, y, fg)
	y += lineHeight * 2

	level := palette.LevelFor(st.Gauge, heatfield.MaxIntensity)
	text.Draw(screen, fmt.Sprintf("Congestion index %3.0f", st.Gauge), face, left, y, fg)
	y += lineHeight / 2
	barWidth := float32(p.width - 2*panelPadding)
	vector.DrawFilledRect(screen, float32(left), float32(y), barWidth, gaugeHeight, color.RGBA{R: 255, G: 255, B: 255, A: 26}, false)
	fill := barWidth * float32(st.Gauge/heatfield.MaxIntensity)
	vector.DrawFilledRect(screen, float32(left), float32(y), fill, gaugeHeight, level.Color(), false)
	y += gaugeHeight + lineHeight
	text.Draw(screen, fmt.Sprintf("peak %.0f  low %.0f  (%s)", st.Stats.Max, st.Stats.Min, level), face, left, y, fg)
	y += lineHeight * 2

	for _, e := range palette.Legend() {
		vector.DrawFilledRect(screen, float32(left), float32(y-swatchSize), swatchSize, swatchSize, e.Bucket.Color(st.Dark), false)
		text.Draw(screen, e.Label, face, left+swatchSize+6, y, fg)
		y += lineHeight
	}
	y += lineHeight

	for _, g := range p.snapshot.Groups {
		text.Draw(screen, g.Name, face, left, y, fg)
		y += lineHeight
		for _, param := range g.Params {
			text.Draw(screen, fmt.Sprintf("  %s: %s", param.Label, param.Value), face, left, y, fg)
			y += lineHeight
		}
	}
}

//go:build !ebiten

package ui

import (
	"citypulse/internal/core"
	"citypulse/internal/heatfield"
)

// PanelState mirrors the GUI build so callers compile headless.
type PanelState struct {
	Generation uint64
	Gauge      float64
	Stats      heatfield.Stats
	Paused     bool
	Dark       bool
}

// Panel is a no-op placeholder for headless builds.
type Panel struct{}

// NewPanel returns nil in the headless build.
func NewPanel(int, core.ParameterProvider) *Panel { return nil }

// Width returns zero in the headless build.
func (p *Panel) Width() int { return 0 }

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any, int, PanelState) {}

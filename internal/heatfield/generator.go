// Package heatfield builds the synthetic congestion field behind the traffic
// heat map: a radial gradient around the grid center with a few sharp
// hotspots layered on top.
package heatfield

import (
	"errors"
	"fmt"
	"math"

	"citypulse/pkg/rng"
)

var (
	// ErrInvalidSize reports a non-positive grid size.
	ErrInvalidSize = errors.New("field size must be positive")
	// ErrInvalidHotspots reports a negative hotspot count.
	ErrInvalidHotspots = errors.New("hotspot count must not be negative")
	// ErrNilSource reports a missing random source.
	ErrNilSource = errors.New("random source is required")
)

// Tuning constants for the base gradient and hotspots. Reference visuals
// depend on these exact values.
const (
	basePeak       = 100.0
	baseFalloff    = 20.0
	jitterSpan     = 30.0
	jitterOffset   = 15.0
	hotspotPeak    = 80.0
	hotspotFalloff = 30.0
	hotspotRadius  = 2
)

// Hotspot is a transient boost center used during a single generation pass.
type Hotspot struct {
	Row, Col int
}

// Generator produces fresh Fields from a random source. It is not safe for
// concurrent use because the source is consumed sequentially.
type Generator struct {
	cfg Config
	src rng.Source
}

// NewGenerator validates cfg and returns a Generator drawing from src.
func NewGenerator(cfg Config, src rng.Source) (*Generator, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("new generator: size %d: %w", cfg.Size, ErrInvalidSize)
	}
	if cfg.Hotspots < 0 {
		return nil, fmt.Errorf("new generator: hotspots %d: %w", cfg.Hotspots, ErrInvalidHotspots)
	}
	if src == nil {
		return nil, fmt.Errorf("new generator: %w", ErrNilSource)
	}
	return &Generator{cfg: cfg, src: src}, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate builds a new Field at the configured size.
func (g *Generator) Generate() *Field {
	return g.build(g.cfg.Size)
}

// GenerateSize builds a new Field of the given size.
func (g *Generator) GenerateSize(size int) (*Field, error) {
	if size <= 0 {
		return nil, fmt.Errorf("generate: size %d: %w", size, ErrInvalidSize)
	}
	return g.build(size), nil
}

func (g *Generator) build(size int) *Field {
	f := g.baseField(size)
	for h := 0; h < g.cfg.Hotspots; h++ {
		f.applyHotspot(g.pickHotspot(size))
	}
	return f
}

// baseField fills a radial gradient centered on (size/2, size/2) with a
// uniform jitter in [-15, 15) per cell.
func (g *Generator) baseField(size int) *Field {
	f := newField(size)
	center := size / 2
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			d := distance(i, j, center, center)
			base := math.Max(0, basePeak-d*baseFalloff)
			jitter := g.src.Float64()*jitterSpan - jitterOffset
			f.data[f.Index(i, j)] = clamp(base + jitter)
		}
	}
	return f
}

func (g *Generator) pickHotspot(size int) Hotspot {
	row := pickIndex(g.src.Float64(), size)
	col := pickIndex(g.src.Float64(), size)
	return Hotspot{Row: row, Col: col}
}

// applyHotspot boosts every cell within a 5x5 box around h.
func (f *Field) applyHotspot(h Hotspot) {
	rMin, rMax := max(0, h.Row-hotspotRadius), min(f.size-1, h.Row+hotspotRadius)
	cMin, cMax := max(0, h.Col-hotspotRadius), min(f.size-1, h.Col+hotspotRadius)
	for i := rMin; i <= rMax; i++ {
		for j := cMin; j <= cMax; j++ {
			d := distance(i, j, h.Row, h.Col)
			f.add(i, j, math.Max(0, hotspotPeak-d*hotspotFalloff))
		}
	}
}

func pickIndex(r float64, size int) int {
	idx := int(math.Floor(r * float64(size)))
	return min(size-1, max(0, idx))
}

func distance(i, j, ci, cj int) float64 {
	di, dj := float64(i-ci), float64(j-cj)
	return math.Sqrt(di*di + dj*dj)
}

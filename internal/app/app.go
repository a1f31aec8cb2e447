//go:build ebiten

package app

import (
	"time"

	"citypulse/internal/gauge"
	"citypulse/internal/heatfield"
	"citypulse/internal/heatmap"
	"citypulse/internal/palette"
	"citypulse/internal/render"
	"citypulse/internal/schedule"
	"citypulse/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	margin     = 16
	panelWidth = 260
)

// Game adapts the heat map monitor to the ebiten.Game interface. Ebiten
// calls Update on a single goroutine, so the monitor runs on a Loop that is
// advanced one tick per Update.
type Game struct {
	cfg     *Config
	loop    *schedule.Loop
	monitor *heatmap.Monitor
	gauge   *gauge.Animator
	painter *render.GridPainter
	overlay *ui.Overlay
	panel   *ui.Panel

	tick   time.Duration
	dark   bool
	paused bool
}

// New constructs a Game and activates its monitor.
func New(cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := cfg.NewGenerator()
	if err != nil {
		return nil, err
	}
	loop := schedule.NewLoop()
	monitor, err := heatmap.NewMonitor(gen, loop, cfg.Interval)
	if err != nil {
		return nil, err
	}

	size := gen.Config().Size
	g := &Game{
		cfg:     cfg,
		loop:    loop,
		monitor: monitor,
		gauge:   gauge.NewAnimator(loop, gauge.DefaultDuration, gauge.DefaultSteps, nil),
		painter: render.NewGridPainter(size),
		overlay: ui.NewOverlay(size),
		panel:   ui.NewPanel(panelWidth, gen),
		tick:    time.Second / time.Duration(cfg.TPS),
		dark:    cfg.Dark,
	}
	monitor.OnUpdate(func(f *heatfield.Field) {
		g.gauge.SetTarget(f.Stats().Mean)
	})
	monitor.Activate()
	return g, nil
}

// Close stops regeneration and any running animation.
func (g *Game) Close() {
	g.monitor.Deactivate()
	g.gauge.Stop()
}

// Regenerate publishes a fresh field now and restarts the interval.
func (g *Game) Regenerate() {
	g.monitor.Deactivate()
	g.monitor.Activate()
}

// Update handles per-frame input and advances scheduled work.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.dark = !g.dark
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Regenerate()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.paused {
		g.loop.Advance(g.tick)
	}
	return nil
}

// Draw renders the latest field, the city overlay and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Background(g.dark))

	f := g.monitor.Latest()
	if f == nil {
		return
	}
	side := f.Size() * g.cfg.Scale
	g.painter.Blit(screen, f, g.dark, margin, margin, g.cfg.Scale)
	g.overlay.Draw(screen, ui.Rect{X: margin, Y: margin, W: float32(side), H: float32(side)}, g.dark)

	g.panel.Draw(screen, side+2*margin, ui.PanelState{
		Generation: g.monitor.Generation(),
		Gauge:      g.gauge.Value(),
		Stats:      f.Stats(),
		Paused:     g.paused,
		Dark:       g.dark,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.painter.Size() * g.cfg.Scale
	return side + 2*margin + g.panel.Width(), max(side+2*margin, 480)
}

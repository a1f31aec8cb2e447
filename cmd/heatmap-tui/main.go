package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"citypulse/internal/app"
	"citypulse/internal/config"
	"citypulse/internal/heatfield"
	"citypulse/internal/heatmap"
	"citypulse/internal/schedule"
	"citypulse/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		config.Exitf("%v", err)
	}
	cfg.Bind(flag.CommandLine)
	once := flag.Bool("once", false, "print a single field and exit")
	asJSON := flag.Bool("json", false, "with -once, print the field as JSON")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		config.Exitf("invalid configuration: %v", err)
	}
	gen, err := cfg.NewGenerator()
	if err != nil {
		config.Exitf("new generator: %v", err)
	}

	if *once {
		if err := printOnce(gen.Generate(), *asJSON); err != nil {
			config.Exitf("print field: %v", err)
		}
		return
	}

	if err := run(cfg, gen); err != nil {
		log.Fatal(err)
	}
}

func printOnce(f *heatfield.Field, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	}
	_, err := fmt.Print(term.Plain(f))
	return err
}

func run(cfg *app.Config, gen *heatfield.Generator) error {
	tk := schedule.NewTicker()
	monitor, err := heatmap.NewMonitor(gen, tk, cfg.Interval)
	if err != nil {
		return err
	}

	tui := tview.NewApplication()
	view := term.NewView(cfg.Dark)
	help := tview.NewTextView().SetText(" q quit   r regenerate")
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view.Primitive(), 0, 1, false).
		AddItem(help, 1, 0, false)

	monitor.OnUpdate(func(f *heatfield.Field) {
		gen := monitor.Generation()
		tui.QueueUpdateDraw(func() { view.Show(f, gen) })
	})

	tui.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
			tui.Stop()
			return nil
		case ev.Rune() == 'r':
			// Deactivate waits for an in-flight refresh, which may be queueing
			// a draw on this event loop.
			go func() {
				monitor.Deactivate()
				monitor.Activate()
			}()
			return nil
		}
		return ev
	})

	monitor.Activate()
	err = tui.SetRoot(layout, true).Run()
	monitor.Deactivate()
	tk.Wait()
	return err
}

package term

import (
	"citypulse/internal/heatfield"

	"github.com/rivo/tview"
)

// View shows the heat map and a status line in a bordered text view.
type View struct {
	view *tview.TextView
	dark bool
}

// NewView creates an empty heat map view.
func NewView(dark bool) *View {
	v := &View{dark: dark}
	v.view = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	v.view.SetBorder(true).SetTitle(" Traffic Congestion Heatmap ").SetTitleAlign(tview.AlignCenter)
	return v
}

// Show replaces the view content with f.
func (v *View) Show(f *heatfield.Field, generation uint64) {
	v.view.SetText(Render(f, v.dark) + "\n\n" + Status(f, generation))
}

// Primitive returns the tview component.
func (v *View) Primitive() *tview.TextView { return v.view }

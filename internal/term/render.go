// Package term renders heat fields as terminal text.
package term

import (
	"fmt"
	"strings"

	"citypulse/internal/heatfield"
	"citypulse/internal/palette"
)

const cellGlyph = "██"

// Render returns the field as tview color-tagged text, two glyphs per cell,
// followed by the legend.
func Render(f *heatfield.Field, dark bool) string {
	var b strings.Builder
	fg := palette.Hex(palette.Foreground(dark))
	for _, row := range f.Rows() {
		current := palette.Bucket(-1)
		for _, v := range row {
			bucket := palette.BucketFor(v)
			if bucket != current {
				fmt.Fprintf(&b, "[%s]", palette.Hex(bucket.Color(dark)))
				current = bucket
			}
			b.WriteString(cellGlyph)
		}
		fmt.Fprintf(&b, "[%s]\n", fg)
	}
	b.WriteString("\n")
	b.WriteString(Legend(dark))
	return b.String()
}

// Legend returns the color-tagged Low/Medium/High legend line.
func Legend(dark bool) string {
	fg := palette.Hex(palette.Foreground(dark))
	parts := make([]string, 0, len(palette.Legend()))
	for _, e := range palette.Legend() {
		parts = append(parts, fmt.Sprintf("[%s]%s[%s] %s", palette.Hex(e.Bucket.Color(dark)), cellGlyph, fg, e.Label))
	}
	return strings.Join(parts, "   ")
}

// Plain returns an uncolored numeric matrix, one row per line.
func Plain(f *heatfield.Field) string {
	var b strings.Builder
	for _, row := range f.Rows() {
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%5.1f", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Status summarises a field on one line.
func Status(f *heatfield.Field, generation uint64) string {
	s := f.Stats()
	return fmt.Sprintf("gen %d  mean %.1f  peak %.1f  level %s",
		generation, s.Mean, s.Max, palette.LevelFor(s.Mean, heatfield.MaxIntensity))
}

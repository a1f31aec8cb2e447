package heatfield

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Intensity bounds shared by every cell of a Field.
const (
	MinIntensity = 0.0
	MaxIntensity = 100.0
)

// Field stores a square grid of congestion intensities in row-major order.
// Values always lie in [MinIntensity, MaxIntensity].
type Field struct {
	size int
	data []float64
}

func newField(size int) *Field {
	return &Field{size: size, data: make([]float64, size*size)}
}

// Size returns the side length of the grid.
func (f *Field) Size() int { return f.size }

// Index returns the linear slice index for (row, col).
func (f *Field) Index(row, col int) int { return row*f.size + col }

// At returns the intensity at (row, col).
func (f *Field) At(row, col int) float64 { return f.data[f.Index(row, col)] }

// Rows returns one read-only view per row. The views share storage with the
// Field, so callers must not write through them.
func (f *Field) Rows() [][]float64 {
	rows := make([][]float64, f.size)
	for r := range rows {
		start := r * f.size
		rows[r] = f.data[start : start+f.size : start+f.size]
	}
	return rows
}

// Values returns a row-major copy of all cells.
func (f *Field) Values() []float64 {
	return append([]float64(nil), f.data...)
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	return &Field{size: f.size, data: f.Values()}
}

// Stats summarises the intensities of a Field.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Stats computes the min, max and mean intensity.
func (f *Field) Stats() Stats {
	if len(f.data) == 0 {
		return Stats{}
	}
	return Stats{
		Min:  floats.Min(f.data),
		Max:  floats.Max(f.data),
		Mean: floats.Sum(f.data) / float64(len(f.data)),
	}
}

func (f *Field) add(row, col int, delta float64) {
	i := f.Index(row, col)
	f.data[i] = clamp(f.data[i] + delta)
}

type fieldJSON struct {
	Size  int         `json:"size"`
	Cells [][]float64 `json:"cells"`
}

// MarshalJSON encodes the field as {"size": n, "cells": [[...], ...]}.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{Size: f.size, Cells: f.Rows()})
}

// UnmarshalJSON decodes a field, rejecting ragged or out-of-range grids.
func (f *Field) UnmarshalJSON(b []byte) error {
	var raw fieldJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Size <= 0 {
		return fmt.Errorf("decode field: %w", ErrInvalidSize)
	}
	if len(raw.Cells) != raw.Size {
		return fmt.Errorf("decode field: expected %d rows, got %d", raw.Size, len(raw.Cells))
	}
	out := newField(raw.Size)
	for r, row := range raw.Cells {
		if len(row) != raw.Size {
			return fmt.Errorf("decode field: row %d has %d cells, expected %d", r, len(row), raw.Size)
		}
		for c, v := range row {
			if v < MinIntensity || v > MaxIntensity {
				return fmt.Errorf("decode field: cell (%d,%d) = %g outside [0,100]", r, c, v)
			}
			out.data[out.Index(r, c)] = v
		}
	}
	*f = *out
	return nil
}

func clamp(v float64) float64 {
	return min(MaxIntensity, max(MinIntensity, v))
}

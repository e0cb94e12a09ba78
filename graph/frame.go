package graph

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extremes is the value range a frame is scaled to.
type Extremes struct {
	Min float64
	Max float64
}

// ScaleMode decides the extremes of a frame.
type ScaleMode interface {
	extremes(data []float64) Extremes
}

// Fixed scales every frame to the same user supplied range.
type Fixed struct {
	Lower float64
	Upper float64
}

func (f Fixed) extremes([]float64) Extremes {
	return Extremes{Min: f.Lower, Max: f.Upper}
}

// Variable scales every frame to its visible data. Zero is always in range.
type Variable struct{}

func (Variable) extremes(data []float64) Extremes {
	if len(data) == 0 {
		return Extremes{}
	}

	// adding zero turns a -0 sample into 0
	return Extremes{
		Min: math.Min(0, floats.Min(data)) + 0,
		Max: math.Max(0, floats.Max(data)) + 0,
	}
}

// Frame is the geometry and data for a single redraw.
type Frame struct {
	Rows int
	Cols int

	// Data is the visible suffix of the history, newest last.
	Data []float64

	Extremes Extremes
}

// NewFrame builds the frame for a terminal of rows by cols cells.
//
// At most cols+1 of the newest samples are visible.
func NewFrame(history []float64, rows, cols int, mode ScaleMode) Frame {
	start := len(history) - cols - 1
	if start < 0 {
		start = 0
	}

	data := history[start:]

	return Frame{
		Rows:     rows,
		Cols:     cols,
		Data:     data,
		Extremes: mode.extremes(data),
	}
}

// Row maps value to a terminal row. Larger values map to smaller rows.
//
// The result is not clamped. When the extremes are equal every value maps to
// the bottom row.
func (f *Frame) Row(value float64) int {
	bottom := f.Rows - 1

	span := f.Extremes.Max - f.Extremes.Min
	if span == 0 {
		return bottom
	}

	scale := float64(bottom) / span
	return bottom - int(math.Round((value-f.Extremes.Min)*scale))
}

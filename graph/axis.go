package graph

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// RenderAxes draws the vertical axis, the zero line and the zero, max and min
// labels. It must run after RenderBars so glyphs over bars stay visible.
func RenderAxes(f *Frame, s Surface) {
	var axis = f.Cols - 1

	for xRow := 0; xRow < f.Rows; xRow++ {
		renderOverlayRune(s, axis, xRow, VLineRune)
	}

	if zero := f.Row(0); onScreen(f, zero) {
		for xCol := 0; xCol < axis; xCol++ {
			renderOverlayRune(s, xCol, zero, HLineRune)
		}
	}

	RenderLabel(f, 0, s)
	RenderLabel(f, f.Extremes.Max, s)
	RenderLabel(f, f.Extremes.Min, s)
}

// RenderLabel writes value next to a tee on the axis, on the row value maps to.
func RenderLabel(f *Frame, value float64, s Surface) {
	var row = f.Row(value)
	if !onScreen(f, row) {
		return
	}

	var label = FormatValue(value)
	var col = f.Cols - 2 - runewidth.StringWidth(label)

	renderOverlayRune(s, f.Cols-1, row, RTeeRune)
	renderOverlayString(s, col, row, label)
}

// RenderCenteredText writes text centered on row. Nothing is drawn when the
// text does not fit.
func RenderCenteredText(f *Frame, row int, text string, s Surface) {
	var start = f.Cols/2 - runewidth.StringWidth(text)/2
	if start > 0 {
		renderOverlayString(s, start, row, text)
	}
}

// FormatValue returns the shortest decimal form of value. Negative zero is
// written as 0.
func FormatValue(value float64) string {
	if value == 0 {
		value = 0
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

func onScreen(f *Frame, row int) bool {
	return row >= 0 && row < f.Rows
}

// renderOverlayRune draws ch, reversing it when the cell already belongs to a
// bar.
func renderOverlayRune(s Surface, col, row int, ch rune) {
	if !s.Reversed(col, row) {
		s.SetCell(col, row, ch)
		return
	}

	s.SetReverse(true)
	s.SetCell(col, row, ch)
	s.SetReverse(false)
}

func renderOverlayString(s Surface, col, row int, text string) {
	for _, ch := range text {
		var width = runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}

		renderOverlayRune(s, col, row, ch)
		col += width
	}
}

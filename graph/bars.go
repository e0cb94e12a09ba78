package graph

// RenderBars draws one reversed bar per visible sample, newest on the right.
func RenderBars(f *Frame, s Surface) {
	var zero = f.Row(0)

	s.SetReverse(true)

	for xBin, last := 0, len(f.Data)-1; xBin <= last; xBin++ {
		var xCol = f.Cols - xBin
		if xCol < 0 {
			continue
		}

		renderBar(f, s, xCol, zero, f.Data[last-xBin])
	}

	s.SetReverse(false)
}

// renderBar fills the rows between zero and value, both ends included.
func renderBar(f *Frame, s Surface, col, zero int, value float64) {
	var top, stop int

	switch {
	case value > 0:
		top, stop = f.Row(value), zero
	case value < 0:
		top, stop = zero, f.Row(value)
	default:
		return
	}

	if top < 0 {
		top = 0
	}

	if stop >= f.Rows {
		stop = f.Rows - 1
	}

	for xRow := top; xRow <= stop; xRow++ {
		s.SetCell(col, xRow, BarRune)
	}
}

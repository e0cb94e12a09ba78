// Package graph turns a history of samples into a scrolling bar graph.
package graph

// Draw clears s and draws one complete frame of history onto it.
func Draw(s Surface, history *History, mode ScaleMode, title string) Frame {
	s.Clear()

	var cols, rows = s.Size()
	var frame = NewFrame(history.Samples(), rows, cols, mode)

	RenderBars(&frame, s)
	RenderAxes(&frame, s)

	if title != "" {
		RenderCenteredText(&frame, 0, title, s)
	}

	s.Show()

	return frame
}

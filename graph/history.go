package graph

// History holds every sample seen so far, oldest first.
type History struct {
	samples []float64
}

// Append adds a sample to the end of the history.
func (h *History) Append(value float64) {
	h.samples = append(h.samples, value)
}

// Len returns the number of samples.
func (h *History) Len() int {
	return len(h.samples)
}

// Samples returns the backing slice. Callers must not modify it.
func (h *History) Samples() []float64 {
	return h.samples
}

// Package input reads samples, one per line.
package input

import (
	"context"
	"math"
	"strconv"
	"strings"
)

// Session is a source of lines.
type Session interface {
	// Start sends every line to lines until the source runs out, returning nil
	// at the end of the input. It returns early when ctx is done.
	Start(ctx context.Context, lines chan<- string) error
}

// ParseSample parses a line as a sample. Lines that are not a finite number
// are not samples.
func ParseSample(line string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, false
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

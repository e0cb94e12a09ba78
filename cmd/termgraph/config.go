package main

import (
	"math"

	"github.com/noriah/termgraph/graph"
	"github.com/noriah/termgraph/graphic"
	"github.com/pkg/errors"
)

// config holds everything we read from the command line
type config struct {
	// title is drawn at the top of the graph
	title string
	// fixed selects a fixed scale
	fixed bool
	// variable selects a scale fitted to the visible data
	variable bool
	// lower is the bottom of a fixed scale
	lower float64
	// upper is the top of a fixed scale. NaN until given
	upper float64
	// backend is the terminal backend from list-backends
	backend string
	// command is run with sh -c and read instead of stdin
	command string
}

// newZeroConfig returns a zero config
// it is the "default"
func newZeroConfig() config {
	return config{
		lower:   0.0,
		upper:   math.NaN(),
		backend: graphic.DefaultBackend,
	}
}

func (cfg *config) validate() error {

	if cfg.fixed && cfg.variable {
		return errors.New("--fixed and --variable can not be used together")
	}

	if graphic.FindBackend(cfg.backend) == nil {
		return errors.Errorf("backend not found: %q; check list-backends", cfg.backend)
	}

	if !cfg.fixed {
		return nil
	}

	switch {
	case math.IsNaN(cfg.upper):
		return errors.New("--fixed requires --upper")

	case math.IsInf(cfg.lower, 0), math.IsInf(cfg.upper, 0), math.IsNaN(cfg.lower):
		return errors.New("scale bounds must be finite")

	case cfg.lower >= cfg.upper:
		return errors.Errorf("lower bound %v must be below upper bound %v", cfg.lower, cfg.upper)
	}

	return nil
}

func (cfg *config) scaleMode() graph.ScaleMode {
	if cfg.fixed {
		return graph.Fixed{Lower: cfg.lower, Upper: cfg.upper}
	}

	return graph.Variable{}
}

// Package graphic provides terminal surfaces that graphs are drawn on.
package graphic

import (
	"context"
	"fmt"

	"github.com/noriah/termgraph/graph"
	"github.com/pkg/errors"
)

// Surface is a terminal we can draw frames onto.
type Surface interface {
	graph.Surface

	// Init takes over the terminal. It must be called before drawing.
	Init() error

	// Start watches for quit keys. The returned context is cancelled when the
	// user asks to quit.
	Start(ctx context.Context) context.Context

	// Close gives the terminal back.
	Close() error
}

type NamedBackend struct {
	Name string
	New  func() Surface
}

// DefaultBackend is used when no backend is asked for.
const DefaultBackend = "tcell"

var Backends = []NamedBackend{
	{Name: "tcell", New: func() Surface { return NewDisplay() }},
	{Name: "termbox", New: func() Surface { return NewTermbox() }},
}

// FindBackend is a helper function that finds a backend. It returns nil if the
// backend is not found.
func FindBackend(name string) *NamedBackend {
	for idx := range Backends {
		if Backends[idx].Name == name {
			return &Backends[idx]
		}
	}
	return nil
}

// InitBackend creates the named surface and takes over the terminal with it.
func InitBackend(name string) (Surface, error) {
	backend := FindBackend(name)
	if backend == nil {
		return nil, fmt.Errorf("backend not found: %q; check list-backends", name)
	}

	surface := backend.New()
	if err := surface.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize "+name)
	}

	return surface, nil
}

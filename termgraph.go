// Package termgraph draws a live bar graph of numbers read line by line.
package termgraph

import (
	"context"

	"github.com/noriah/termgraph/graph"
	"github.com/noriah/termgraph/input"
	"github.com/pkg/errors"
)

// Config is the configuration for a termgraph session.
type Config struct {
	// Title is drawn centered on the top row. Empty for none.
	Title string
	// Scale decides the range the graph is scaled to.
	Scale graph.ScaleMode
	// Session supplies the lines to graph.
	Session input.Session
	// Surface is drawn on after every sample.
	Surface graph.Surface
	// DrawFunc is called after every redraw. Nil by default.
	DrawFunc func(graph.Frame)
}

// Run graphs every sample from the session until the input ends or ctx is
// done. Lines that are not samples are skipped without a redraw.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.Session == nil {
		return errors.New("no input session")
	}

	if cfg.Surface == nil {
		return errors.New("no surface to draw on")
	}

	scale := cfg.Scale
	if scale == nil {
		scale = graph.Variable{}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		errCh <- cfg.Session.Start(ctx, lines)
	}()

	var history graph.History

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-errCh:
			if err != nil && ctx.Err() == nil {
				return errors.Wrap(err, "input session failed")
			}
			return nil

		case line := <-lines:
			value, ok := input.ParseSample(line)
			if !ok {
				continue
			}

			history.Append(value)

			frame := graph.Draw(cfg.Surface, &history, scale, cfg.Title)
			if cfg.DrawFunc != nil {
				cfg.DrawFunc(frame)
			}
		}
	}
}

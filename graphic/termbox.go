package graphic

import (
	"context"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// Termbox draws frames with termbox.
type Termbox struct {
	fg      termbox.Attribute
	restore func()
	done    chan struct{}
}

// NewTermbox returns a termbox display that has not been initialized yet.
func NewTermbox() *Termbox {
	return &Termbox{fg: termbox.ColorDefault}
}

// Init sets up the terminal.
func (tb *Termbox) Init() error {
	restore, err := normalizeTerminal()
	if err != nil {
		return errors.Wrap(err, "failed to normalize terminal")
	}

	if err := termbox.Init(); err != nil {
		restore()
		return errors.Wrap(err, "failed to init termbox")
	}

	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	tb.restore = restore

	return nil
}

// Start polls terminal events. The returned context is cancelled when the user
// asks to quit.
func (tb *Termbox) Start(ctx context.Context) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)

	tb.done = make(chan struct{})

	go func() {
		defer close(tb.done)
		defer dispCancel()

		for !handleTermboxEvent(termbox.PollEvent(), dispCancel) {
		}
	}()

	return dispCtx
}

// handleTermboxEvent cancels on quit keys and reports whether polling should
// stop.
func handleTermboxEvent(ev termbox.Event, cancel context.CancelFunc) bool {
	switch ev.Type {
	case termbox.EventInterrupt:
		return true

	case termbox.EventError:
		cancel()
		return true

	case termbox.EventKey:
		switch {
		case ev.Ch == 'q', ev.Ch == 'Q', ev.Key == termbox.KeyCtrlC, ev.Key == termbox.KeyEsc:
			cancel()
			return true
		}
	}

	return false
}

// Close cleans up the terminal.
func (tb *Termbox) Close() error {
	if tb.restore == nil {
		return nil
	}

	if tb.done != nil {
		select {
		case <-tb.done:
		default:
			// Interrupt blocks until PollEvent takes it, and the poller may
			// stop on its own before then.
			go termbox.Interrupt()
			<-tb.done
		}
		tb.done = nil
	}

	termbox.Close()

	tb.restore()
	tb.restore = nil

	return nil
}

// Size returns the width and height of the terminal.
func (tb *Termbox) Size() (int, int) {
	return termbox.Size()
}

// Clear blanks the terminal.
func (tb *Termbox) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// SetReverse toggles reverse video for the following cells.
func (tb *Termbox) SetReverse(on bool) {
	if on {
		tb.fg = termbox.ColorDefault | termbox.AttrReverse
	} else {
		tb.fg = termbox.ColorDefault
	}
}

// SetCell draws ch at col, row.
func (tb *Termbox) SetCell(col, row int, ch rune) {
	termbox.SetCell(col, row, ch, tb.fg, termbox.ColorDefault)
}

// Reversed reports whether the cell at col, row is in reverse video.
func (tb *Termbox) Reversed(col, row int) bool {
	width, height := termbox.Size()
	if col < 0 || col >= width || row < 0 || row >= height {
		return false
	}

	cells := termbox.CellBuffer()
	return cells[row*width+col].Fg&termbox.AttrReverse != 0
}

// Show presents the frame.
func (tb *Termbox) Show() {
	termbox.Flush()
}

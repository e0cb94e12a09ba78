package graphic

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var (
	styleDefault = tcell.StyleDefault
	styleReverse = styleDefault.Reverse(true)
)

// Display draws frames with tcell.
type Display struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewDisplay returns a display that has not been initialized yet.
func NewDisplay() *Display {
	return &Display{style: styleDefault}
}

// Init sets up the terminal.
func (d *Display) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}

	return d.initScreen(screen)
}

func (d *Display) initScreen(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to init screen")
	}

	screen.DisableMouse()
	screen.HideCursor()

	d.screen = screen

	return nil
}

// Start polls terminal events. The returned context is cancelled when the user
// asks to quit.
func (d *Display) Start(ctx context.Context) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)
	go d.eventPoller(dispCtx, dispCancel)
	return dispCtx
}

func (d *Display) eventPoller(ctx context.Context, fn context.CancelFunc) {
	defer fn()

	for {
		// first check if we need to exit
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}

		if d.handleEvent(ev) {
			return
		}
	}
}

// handleEvent reports whether ev asks us to quit.
func (d *Display) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			}

		case tcell.KeyCtrlC, tcell.KeyEscape:
			return true
		}

	case *tcell.EventResize:
		d.screen.Sync()
	}

	return false
}

// Close cleans up the terminal. The event poller returns once the screen is
// finalized.
func (d *Display) Close() error {
	if d.screen != nil {
		d.screen.Fini()
	}
	return nil
}

// Size returns the width and height of the screen.
func (d *Display) Size() (int, int) {
	return d.screen.Size()
}

// Clear blanks the screen.
func (d *Display) Clear() {
	d.screen.Clear()
}

// SetReverse toggles reverse video for the following cells.
func (d *Display) SetReverse(on bool) {
	if on {
		d.style = styleReverse
	} else {
		d.style = styleDefault
	}
}

// SetCell draws ch at col, row.
func (d *Display) SetCell(col, row int, ch rune) {
	d.screen.SetContent(col, row, ch, nil, d.style)
}

// Reversed reports whether the cell at col, row is in reverse video.
func (d *Display) Reversed(col, row int) bool {
	_, _, style, _ := d.screen.GetContent(col, row)
	_, _, attrs := style.Decompose()
	return attrs&tcell.AttrReverse != 0
}

// Show presents the frame.
func (d *Display) Show() {
	d.screen.Show()
}

package graphic

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/noriah/termgraph/graph"
)

func newSimDisplay(t *testing.T, cols, rows int) (*Display, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")

	d := NewDisplay()
	if err := d.initScreen(sim); err != nil {
		t.Fatalf("init: %v", err)
	}

	sim.SetSize(cols, rows)

	t.Cleanup(func() { d.Close() })

	return d, sim
}

func simCell(sim tcell.SimulationScreen, col, row int) (rune, bool) {
	cells, width, _ := sim.GetContents()
	cell := cells[row*width+col]

	var ch rune
	if len(cell.Runes) > 0 {
		ch = cell.Runes[0]
	}

	_, _, attrs := cell.Style.Decompose()
	return ch, attrs&tcell.AttrReverse != 0
}

func TestDisplayReverse(t *testing.T) {
	d, _ := newSimDisplay(t, 5, 5)

	d.SetReverse(true)
	d.SetCell(1, 1, graph.BarRune)
	d.SetReverse(false)
	d.SetCell(2, 1, 'x')

	if !d.Reversed(1, 1) {
		t.Error("bar cell is not reversed")
	}

	if d.Reversed(2, 1) {
		t.Error("plain cell is reversed")
	}

	d.Clear()

	if d.Reversed(1, 1) {
		t.Error("cell still reversed after Clear")
	}
}

func TestDisplayDraw(t *testing.T) {
	d, sim := newSimDisplay(t, 10, 10)

	var history graph.History
	for _, value := range []float64{1, 2, 3} {
		history.Append(value)
	}

	graph.Draw(d, &history, graph.Variable{}, "")

	checks := []struct {
		col, row int
		ch       rune
		reverse  bool
	}{
		{8, 7, graph.BarRune, true},
		{9, 5, graph.VLineRune, true},
		{9, 0, graph.RTeeRune, false},
		{9, 9, graph.RTeeRune, true},
		{7, 0, '3', false},
		{0, 9, graph.HLineRune, false},
	}

	for _, check := range checks {
		ch, reverse := simCell(sim, check.col, check.row)
		if ch != check.ch || reverse != check.reverse {
			t.Errorf("(%d, %d): got %q reverse=%v, want %q reverse=%v",
				check.col, check.row, ch, reverse, check.ch, check.reverse)
		}
	}
}

func TestDisplayHandleEvent(t *testing.T) {
	d, _ := newSimDisplay(t, 5, 5)

	tests := []struct {
		ev   tcell.Event
		quit bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{tcell.NewEventResize(5, 5), false},
	}

	for _, test := range tests {
		if got := d.handleEvent(test.ev); got != test.quit {
			t.Errorf("%T %v: got quit=%v, want %v", test.ev, test.ev, got, test.quit)
		}
	}
}

func TestDisplayStartQuit(t *testing.T) {
	d, sim := newSimDisplay(t, 5, 5)

	ctx := d.Start(context.Background())

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled after q")
	}
}

func TestFindBackend(t *testing.T) {
	for _, name := range []string{"tcell", "termbox"} {
		if FindBackend(name) == nil {
			t.Errorf("backend %q not registered", name)
		}
	}

	if FindBackend("ncurses") != nil {
		t.Error("found a backend that does not exist")
	}

	if FindBackend(DefaultBackend) == nil {
		t.Error("default backend is not registered")
	}

	if _, err := InitBackend("ncurses"); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}

func TestNormalizeTerminal(t *testing.T) {
	t.Setenv("TERM", "tmux-256color")
	t.Setenv("TERMINFO", "/tmp/terminfo")

	restore, err := normalizeTerminal()
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := os.LookupEnv("TERMINFO"); ok {
		t.Error("TERMINFO still set under tmux")
	}

	restore()

	if got := os.Getenv("TERMINFO"); got != "/tmp/terminfo" {
		t.Errorf("TERMINFO restored to %q", got)
	}
}

func TestNormalizeTerminalUnset(t *testing.T) {
	t.Setenv("TERM", "tmux")
	t.Setenv("TERMINFO", "")
	os.Unsetenv("TERMINFO")

	restore, err := normalizeTerminal()
	if err != nil {
		t.Fatal(err)
	}

	restore()

	if _, ok := os.LookupEnv("TERMINFO"); ok {
		t.Error("restore set a TERMINFO that was never there")
	}
}

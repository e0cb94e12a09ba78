package graph

// Glyphs used for the axes.
const (
	// BarRune fills a bar cell. Bars are drawn reversed, so a space shows as
	// a solid block.
	BarRune rune = ' '

	// VLineRune is the vertical axis.
	VLineRune rune = '│'

	// HLineRune is the zero line.
	HLineRune rune = '─'

	// RTeeRune marks a label on the vertical axis.
	RTeeRune rune = '┤'
)

// Surface is a character grid we can draw a frame onto.
//
// Coordinates are (col, row) with (0, 0) at the top left. Writes outside the
// grid are ignored by implementations.
type Surface interface {
	// Size returns the width and height of the surface in cells.
	Size() (cols, rows int)

	// Clear blanks every cell and resets their attributes.
	Clear()

	// SetReverse turns the reverse video attribute on or off for every
	// following SetCell.
	SetReverse(on bool)

	// SetCell draws ch at (col, row) with the current attributes.
	SetCell(col, row int, ch rune)

	// Reversed reports whether the cell at (col, row) is drawn in reverse
	// video.
	Reversed(col, row int) bool

	// Show presents everything drawn since the last Clear.
	Show()
}

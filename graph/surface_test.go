package graph

type testCell struct {
	ch      rune
	reverse bool
}

// testSurface is an in-memory Surface that drops writes outside its grid.
type testSurface struct {
	cols, rows int
	cells      []testCell
	reverse    bool

	clears int
	shows  int
}

func newTestSurface(cols, rows int) *testSurface {
	return &testSurface{
		cols:  cols,
		rows:  rows,
		cells: make([]testCell, cols*rows),
	}
}

func (ts *testSurface) inside(col, row int) bool {
	return col >= 0 && col < ts.cols && row >= 0 && row < ts.rows
}

func (ts *testSurface) Size() (int, int) {
	return ts.cols, ts.rows
}

func (ts *testSurface) Clear() {
	for idx := range ts.cells {
		ts.cells[idx] = testCell{}
	}
	ts.clears++
}

func (ts *testSurface) SetReverse(on bool) {
	ts.reverse = on
}

func (ts *testSurface) SetCell(col, row int, ch rune) {
	if ts.inside(col, row) {
		ts.cells[row*ts.cols+col] = testCell{ch: ch, reverse: ts.reverse}
	}
}

func (ts *testSurface) Reversed(col, row int) bool {
	return ts.inside(col, row) && ts.cells[row*ts.cols+col].reverse
}

func (ts *testSurface) Show() {
	ts.shows++
}

func (ts *testSurface) cell(col, row int) testCell {
	return ts.cells[row*ts.cols+col]
}

// reversedRows lists the reversed rows of col, top to bottom.
func (ts *testSurface) reversedRows(col int) []int {
	var rows []int
	for xRow := 0; xRow < ts.rows; xRow++ {
		if ts.cell(col, xRow).reverse {
			rows = append(rows, xRow)
		}
	}
	return rows
}

func span(from, to int) []int {
	var out []int
	for idx := from; idx <= to; idx++ {
		out = append(out, idx)
	}
	return out
}

package core

// Viewport is the visible window into the buffer. RowOff counts rows and
// ColOff counts rendered columns.
type Viewport struct {
	RowOff int
	ColOff int
	Rows   int // text rows, excluding the status and message bars
	Cols   int
}

// Scroll moves the window by the minimum amount that keeps the cursor's
// row and rendered column visible. RX must be current. Calling it again
// without moving the cursor changes nothing.
func (v *Viewport) Scroll(c Cursor) {
	row := c.Position.Row
	if row < v.RowOff {
		v.RowOff = row
	}
	if v.Rows > 0 && row >= v.RowOff+v.Rows {
		v.RowOff = row - v.Rows + 1
	}

	if c.RX < v.ColOff {
		v.ColOff = c.RX
	}
	if v.Cols > 0 && c.RX >= v.ColOff+v.Cols {
		v.ColOff = c.RX - v.Cols + 1
	}
}

// ScreenPosition returns the 1-based terminal row and column of the cursor.
func (v Viewport) ScreenPosition(c Cursor) (row, col int) {
	return c.Position.Row - v.RowOff + 1, c.RX - v.ColOff + 1
}

package core

// Cursor represents the current position for editing operations.
type Cursor struct {
	Position Position // Row may equal the buffer length: past the last row
	RX       int      // rendered column of Position, derived by RecomputeRX
}

// --- Cursor Movement ---

// clampCol snaps the column to the length of the current row. A cursor past
// the last row always sits at column 0.
func (c *Cursor) clampCol(buffer *Buffer) {
	rowLen := 0
	if row := buffer.Row(c.Position.Row); row != nil {
		rowLen = len(row.Raw)
	}
	c.Position.Col = min(max(c.Position.Col, 0), rowLen)
}

// MoveLeft moves one byte left, wrapping to the end of the previous row.
func (c *Cursor) MoveLeft(buffer *Buffer) {
	switch {
	case c.Position.Col > 0:
		c.Position.Col--
	case c.Position.Row > 0:
		c.Position.Row--
		c.Position.Col = len(buffer.Row(c.Position.Row).Raw)
	}
	c.clampCol(buffer)
}

// MoveRight moves one byte right, wrapping to the start of the next row.
func (c *Cursor) MoveRight(buffer *Buffer) {
	row := buffer.Row(c.Position.Row)
	switch {
	case row == nil:
	case c.Position.Col < len(row.Raw):
		c.Position.Col++
	default:
		c.Position.Row++
		c.Position.Col = 0
	}
	c.clampCol(buffer)
}

// MoveUp moves one row up, keeping the column when the new row is long
// enough.
func (c *Cursor) MoveUp(buffer *Buffer) {
	if c.Position.Row > 0 {
		c.Position.Row--
	}
	c.clampCol(buffer)
}

// MoveDown moves one row down. The row past the last one is reachable so
// text can be appended there.
func (c *Cursor) MoveDown(buffer *Buffer) {
	if c.Position.Row < buffer.Len() {
		c.Position.Row++
	}
	c.clampCol(buffer)
}

func (c *Cursor) MoveToLineStart() {
	c.Position.Col = 0
}

func (c *Cursor) MoveToLineEnd(buffer *Buffer) {
	if row := buffer.Row(c.Position.Row); row != nil {
		c.Position.Col = len(row.Raw)
	}
}

// Move applies a navigation key. It reports false for keys that are not
// cursor movement.
func (c *Cursor) Move(buffer *Buffer, k KeyCode) bool {
	switch k {
	case KeyLeft:
		c.MoveLeft(buffer)
	case KeyRight:
		c.MoveRight(buffer)
	case KeyUp:
		c.MoveUp(buffer)
	case KeyDown:
		c.MoveDown(buffer)
	case KeyHome:
		c.MoveToLineStart()
	case KeyEnd:
		c.MoveToLineEnd(buffer)
	default:
		return false
	}
	return true
}

// RecomputeRX derives RX from the cursor's raw column by expanding tabs the
// same way rows are rendered. It is 0 past the last row.
func (c *Cursor) RecomputeRX(buffer *Buffer) {
	c.RX = buffer.CxToRx(c.Position.Row, c.Position.Col)
}

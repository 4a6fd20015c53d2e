package core

import (
	"bytes"
	"fmt"
	"log"

	"github.com/ionut-t/gokilo/highlighter"
)

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 8

// Row is one document line. Render and Highlight are derived from Raw and are
// recomputed by every Buffer operation that changes Raw.
type Row struct {
	Raw       []byte              // literal bytes, no newline
	Render    []byte              // Raw with tabs expanded to spaces
	Highlight []highlighter.Class // one class per Render byte
}

// CxToRx converts a raw column into a rendered column.
func (r *Row) CxToRx(cx, tabStop int) int {
	cx = min(max(cx, 0), len(r.Raw))
	rx := 0
	for _, c := range r.Raw[:cx] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// Buffer owns the ordered rows of the document being edited.
type Buffer struct {
	rows     []Row
	dirty    bool
	fileName string
	tabStop  int
	hl       highlighter.Highlighter
}

// NewBuffer creates an empty buffer with no rows.
func NewBuffer(tabStop int) *Buffer {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return &Buffer{tabStop: tabStop}
}

// NewBufferFromBytes creates a buffer holding content, marked clean.
func NewBufferFromBytes(content []byte, tabStop int) *Buffer {
	b := NewBuffer(tabStop)
	b.Load(content)
	return b
}

// Len returns the number of rows.
func (b *Buffer) Len() int { return len(b.rows) }

// Row returns row y, or nil when y is out of range. Callers must not modify
// the returned row.
func (b *Buffer) Row(y int) *Row {
	if y < 0 || y >= len(b.rows) {
		return nil
	}
	return &b.rows[y]
}

// Lines returns a copy of every raw row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i := range b.rows {
		lines[i] = string(b.rows[i].Raw)
	}
	return lines
}

func (b *Buffer) Dirty() bool { return b.dirty }

func (b *Buffer) FileName() string { return b.fileName }

func (b *Buffer) SetFileName(name string) { b.fileName = name }

func (b *Buffer) TabStop() int { return b.tabStop }

// Highlighter returns the active highlighter, nil for plain text.
func (b *Buffer) Highlighter() highlighter.Highlighter { return b.hl }

// SetHighlighter replaces the highlighter and re-highlights every row.
func (b *Buffer) SetHighlighter(h highlighter.Highlighter) {
	b.hl = h
	for i := range b.rows {
		b.highlightRow(&b.rows[i])
	}
}

// Load replaces the content with the lines of content, stripping trailing
// CR/LF bytes, and marks the buffer clean.
func (b *Buffer) Load(content []byte) {
	b.rows = b.rows[:0]
	for len(content) > 0 {
		line := content
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			content = nil
		}
		line = bytes.TrimRight(line, "\r\n")
		b.rows = append(b.rows, b.newRow(line))
	}
	b.dirty = false
}

// Bytes returns every row's raw bytes followed by a single newline.
func (b *Buffer) Bytes() []byte {
	size := 0
	for i := range b.rows {
		size += len(b.rows[i].Raw) + 1
	}
	out := make([]byte, 0, size)
	for i := range b.rows {
		out = append(out, b.rows[i].Raw...)
		out = append(out, '\n')
	}
	return out
}

// MarkSaved clears the dirty flag after a successful write.
func (b *Buffer) MarkSaved() { b.dirty = false }

// InsertRow inserts a new row holding a copy of content before row at.
// at may equal Len to append.
func (b *Buffer) InsertRow(at int, content []byte) error {
	if at < 0 || at > len(b.rows) {
		return b.reject("insert row", at, 0)
	}
	b.rows = append(b.rows, Row{})
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = b.newRow(content)
	b.dirty = true
	return nil
}

// DeleteRow removes row at.
func (b *Buffer) DeleteRow(at int) error {
	if at < 0 || at >= len(b.rows) {
		return b.reject("delete row", at, 0)
	}
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	b.dirty = true
	return nil
}

// InsertChar inserts c into row y before raw column x. When y equals Len an
// empty row is appended first.
func (b *Buffer) InsertChar(y, x int, c byte) error {
	if y == len(b.rows) && x == 0 {
		if err := b.InsertRow(y, nil); err != nil {
			return err
		}
	}
	row := b.Row(y)
	if row == nil || x < 0 || x > len(row.Raw) {
		return b.reject("insert char", y, x)
	}

	raw := make([]byte, 0, len(row.Raw)+1)
	raw = append(raw, row.Raw[:x]...)
	raw = append(raw, c)
	raw = append(raw, row.Raw[x:]...)
	b.setRaw(y, raw)
	return nil
}

// DeleteChar deletes the byte before raw column x of row y. At column 0 row y
// is joined onto the end of row y-1. The returned position is where the
// cursor belongs afterwards: for a join, the pre-join length of row y-1.
// Deleting at the start of the document is a no-op.
func (b *Buffer) DeleteChar(y, x int) (Position, error) {
	row := b.Row(y)
	if row == nil || x < 0 || x > len(row.Raw) {
		return Position{Row: y, Col: x}, b.reject("delete char", y, x)
	}
	if x == 0 && y == 0 {
		return Position{}, nil
	}

	if x > 0 {
		raw := make([]byte, 0, len(row.Raw)-1)
		raw = append(raw, row.Raw[:x-1]...)
		raw = append(raw, row.Raw[x:]...)
		b.setRaw(y, raw)
		return Position{Row: y, Col: x - 1}, nil
	}

	prev := &b.rows[y-1]
	joinAt := len(prev.Raw)
	raw := make([]byte, 0, joinAt+len(row.Raw))
	raw = append(raw, prev.Raw...)
	raw = append(raw, row.Raw...)
	b.setRaw(y-1, raw)
	if err := b.DeleteRow(y); err != nil {
		return Position{Row: y, Col: x}, err
	}
	return Position{Row: y - 1, Col: joinAt}, nil
}

// SplitLine moves raw bytes [x, len) of row y into a new row y+1.
func (b *Buffer) SplitLine(y, x int) error {
	row := b.Row(y)
	if row == nil || x < 0 || x > len(row.Raw) {
		return b.reject("split line", y, x)
	}
	tail := append([]byte(nil), row.Raw[x:]...)
	head := append([]byte(nil), row.Raw[:x]...)
	if err := b.InsertRow(y+1, tail); err != nil {
		return err
	}
	b.setRaw(y, head)
	return nil
}

// InsertNewline breaks row y at raw column x. At column 0 an empty row is
// inserted above instead, which also covers y == Len.
func (b *Buffer) InsertNewline(y, x int) error {
	if x == 0 {
		return b.InsertRow(y, nil)
	}
	return b.SplitLine(y, x)
}

// InsertText inserts text at (y, x). Newlines split rows and carriage
// returns are dropped. It returns the position just past the inserted text.
func (b *Buffer) InsertText(y, x int, text []byte) (Position, error) {
	pos := Position{Row: y, Col: x}
	for _, c := range text {
		switch c {
		case '\r':
			continue
		case '\n':
			if err := b.InsertNewline(pos.Row, pos.Col); err != nil {
				return pos, err
			}
			pos = Position{Row: pos.Row + 1}
		default:
			if err := b.InsertChar(pos.Row, pos.Col, c); err != nil {
				return pos, err
			}
			pos.Col++
		}
	}
	return pos, nil
}

// CxToRx returns the rendered column of raw column cx in row y, 0 when y is
// past the last row.
func (b *Buffer) CxToRx(y, cx int) int {
	row := b.Row(y)
	if row == nil {
		return 0
	}
	return row.CxToRx(cx, b.tabStop)
}

// Index returns the raw column of the first occurrence of query in row y,
// or -1.
func (b *Buffer) Index(y int, query []byte) int {
	row := b.Row(y)
	if row == nil {
		return -1
	}
	return bytes.Index(row.Raw, query)
}

// OverlayMatch marks n rendered bytes of row y starting at rx as a search
// match and returns a copy of the highlight it replaced.
func (b *Buffer) OverlayMatch(y, rx, n int) []highlighter.Class {
	row := b.Row(y)
	if row == nil {
		return nil
	}
	saved := append([]highlighter.Class(nil), row.Highlight...)
	for i := max(rx, 0); i < rx+n && i < len(row.Highlight); i++ {
		row.Highlight[i] = highlighter.Match
	}
	return saved
}

// RestoreHighlight puts back a highlight returned by OverlayMatch. It
// refuses when the row no longer has the same rendered length.
func (b *Buffer) RestoreHighlight(y int, saved []highlighter.Class) bool {
	row := b.Row(y)
	if row == nil || len(saved) != len(row.Highlight) {
		return false
	}
	copy(row.Highlight, saved)
	return true
}

func (b *Buffer) newRow(raw []byte) Row {
	r := Row{Raw: append([]byte(nil), raw...)}
	b.updateRow(&r)
	return r
}

func (b *Buffer) setRaw(y int, raw []byte) {
	row := &b.rows[y]
	row.Raw = raw
	b.updateRow(row)
	b.dirty = true
}

// updateRow recomputes Render and Highlight from Raw.
func (b *Buffer) updateRow(r *Row) {
	tabs := bytes.Count(r.Raw, []byte{'\t'})
	render := make([]byte, 0, len(r.Raw)+tabs*(b.tabStop-1))
	for _, c := range r.Raw {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%b.tabStop != 0 {
			render = append(render, ' ')
		}
	}
	r.Render = render
	b.highlightRow(r)
}

func (b *Buffer) highlightRow(r *Row) {
	if b.hl == nil {
		r.Highlight = highlighter.Plain(r.Render)
		return
	}
	r.Highlight = b.hl.Highlight(r.Render)
}

func (b *Buffer) reject(op string, y, x int) error {
	err := fmt.Errorf("%s at row %d col %d (rows %d): %w", op, y, x, len(b.rows), ErrInvalidPosition)
	log.Println(err)
	return err
}

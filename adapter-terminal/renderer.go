package adapter_terminal

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ionut-t/gokilo/core"
	"github.com/ionut-t/gokilo/highlighter"
)

// ANSI sequences written by the renderer.
const (
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	cursorHome   = "\x1b[H"
	clearLine    = "\x1b[K"
	reverseVideo = "\x1b[7m"
	resetStyle   = "\x1b[m"
	defaultColor = "\x1b[39m"
	clearScreen  = "\x1b[2J"
)

// Renderer draws whole frames of an Editor onto a terminal.
type Renderer struct {
	w       io.Writer
	frame   bytes.Buffer
	version string
}

func NewRenderer(w io.Writer, version string) *Renderer {
	return &Renderer{w: w, version: version}
}

// DrawFrame scrolls the viewport and repaints the screen with a single
// write.
func (r *Renderer) DrawFrame(editor *core.Editor) error {
	editor.ScrollViewport()
	state := editor.State()
	vp := state.Viewport

	r.frame.Reset()
	r.frame.WriteString(hideCursor)
	r.frame.WriteString(cursorHome)

	r.drawRows(editor.Buffer(), vp)
	r.drawStatusBar(editor, vp.Cols)
	r.drawMessageBar(editor.StatusMessage(), vp.Cols)

	row, col := vp.ScreenPosition(state.Cursor)
	fmt.Fprintf(&r.frame, "\x1b[%d;%dH", row, col)
	r.frame.WriteString(showCursor)

	_, err := r.w.Write(r.frame.Bytes())
	return err
}

// Clear wipes the screen and homes the cursor, used on exit.
func (r *Renderer) Clear() error {
	_, err := io.WriteString(r.w, clearScreen+cursorHome)
	return err
}

func (r *Renderer) drawRows(buffer *core.Buffer, vp core.Viewport) {
	numRows := buffer.Len()
	for y := range vp.Rows {
		fileRow := y + vp.RowOff
		switch {
		case fileRow < numRows:
			r.drawRow(buffer.Row(fileRow), vp.ColOff, vp.Cols)
		case numRows == 0 && y == vp.Rows/3:
			r.frame.WriteString(r.banner(vp.Cols))
		default:
			r.frame.WriteByte('~')
		}
		r.frame.WriteString(clearLine)
		r.frame.WriteString("\r\n")
	}
}

// banner centers the welcome line and puts the row marker in its left
// padding.
func (r *Renderer) banner(cols int) string {
	welcome := fmt.Sprintf("Gokilo editor -- version %s", r.version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	line := strings.TrimRight(lipgloss.PlaceHorizontal(cols, lipgloss.Center, welcome), " ")
	if strings.HasPrefix(line, " ") {
		line = "~" + line[1:]
	}
	return line
}

// drawRow writes the visible slice of one rendered row, switching colors
// only when the highlight class changes.
func (r *Renderer) drawRow(row *core.Row, colOff, cols int) {
	start := min(colOff, len(row.Render))
	end := min(colOff+cols, len(row.Render))
	render := row.Render[start:end]
	hl := row.Highlight[start:end]

	current := -1
	for i, c := range render {
		if c < 32 || c == 127 {
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			r.frame.WriteString(reverseVideo)
			r.frame.WriteByte(sym)
			r.frame.WriteString(resetStyle)
			if current != -1 {
				fmt.Fprintf(&r.frame, "\x1b[%dm", current)
			}
			continue
		}

		color := hl[i].Color()
		if hl[i] == highlighter.Normal {
			if current != -1 {
				r.frame.WriteString(defaultColor)
				current = -1
			}
		} else if color != current {
			current = color
			fmt.Fprintf(&r.frame, "\x1b[%dm", color)
		}
		r.frame.WriteByte(c)
	}
	r.frame.WriteString(defaultColor)
}

func (r *Renderer) drawStatusBar(editor *core.Editor, cols int) {
	buffer := editor.Buffer()

	name := buffer.FileName()
	if name == "" {
		name = core.NoNameLabel
	}
	modified := ""
	if buffer.Dirty() {
		modified = core.ModifiedLabel
	}
	fileType := editor.FileType()
	if fileType == "" {
		fileType = core.NoFileTypeLabel
	}

	left := fmt.Sprintf("%.20s - %d lines %s", name, buffer.Len(), modified)
	right := fmt.Sprintf("%s | %d/%d", fileType, editor.State().Cursor.Position.Row+1, buffer.Len())
	if len(left) > cols {
		left = left[:cols]
	}

	r.frame.WriteString(reverseVideo)
	r.frame.WriteString(left)
	for n := len(left); n < cols; n++ {
		if cols-n == len(right) {
			r.frame.WriteString(right)
			break
		}
		r.frame.WriteByte(' ')
	}
	r.frame.WriteString(resetStyle)
	r.frame.WriteString("\r\n")
}

func (r *Renderer) drawMessageBar(msg string, cols int) {
	r.frame.WriteString(clearLine)
	if len(msg) > cols {
		msg = msg[:cols]
	}
	r.frame.WriteString(msg)
}

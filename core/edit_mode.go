package core

import (
	"charm.land/bubbles/v2/key"
)

// editMode is the default, modeless editing state: printable bytes are
// inserted and everything else navigates or runs a command.
type editMode struct{}

func (m *editMode) Name() Mode { return EditMode }

func (m *editMode) Enter(editor *Editor) {}

func (m *editMode) Exit(editor *Editor) {}

func (m *editMode) HandleKey(editor *Editor, k KeyEvent) error {
	keys := editor.keys

	if key.Matches(k, keys.Quit) {
		editor.requestQuit()
		return nil
	}
	editor.quitLeft = editor.opts.QuitTimes

	switch {
	case key.Matches(k, keys.Save):
		editor.Save()
		return nil
	case key.Matches(k, keys.Find):
		return editor.Find()
	case key.Matches(k, keys.Copy):
		editor.CopyLine()
		return nil
	case key.Matches(k, keys.Paste):
		return editor.Paste()
	case key.Matches(k, keys.Refresh):
		return nil
	}

	buffer := editor.buffer
	cursor := &editor.state.Cursor
	row, col := cursor.Position.Row, cursor.Position.Col

	switch k.Key {
	case KeyEnter:
		if err := buffer.InsertNewline(row, col); err != nil {
			return err
		}
		cursor.Position = Position{Row: row + 1}
		return nil

	case KeyBackspace, KeyCtrlBackspace, KeyDelete:
		if k.Key == KeyDelete {
			cursor.MoveRight(buffer)
		}
		return editor.deleteChar()

	case KeyPageUp, KeyPageDown:
		editor.movePage(k.Key)
		return nil

	case KeyNormal:
		if err := buffer.InsertChar(row, col, k.Byte); err != nil {
			return err
		}
		cursor.Position.Col++
		return nil

	default:
		cursor.Move(buffer, k.Key)
		return nil
	}
}

func (e *Editor) deleteChar() error {
	pos := e.state.Cursor.Position
	if pos.Row == e.buffer.Len() {
		return nil
	}
	next, err := e.buffer.DeleteChar(pos.Row, pos.Col)
	if err != nil {
		return err
	}
	e.state.Cursor.Position = next
	return nil
}

// movePage jumps to the top or bottom visible row, then moves a full screen
// of rows further.
func (e *Editor) movePage(k KeyCode) {
	cursor := &e.state.Cursor
	vp := e.state.Viewport

	dir := KeyUp
	if k == KeyPageUp {
		cursor.Position.Row = vp.RowOff
	} else {
		dir = KeyDown
		cursor.Position.Row = min(vp.RowOff+vp.Rows-1, e.buffer.Len())
	}
	for range vp.Rows {
		cursor.Move(e.buffer, dir)
	}
}

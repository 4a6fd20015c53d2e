package core

import "github.com/ionut-t/gokilo/highlighter"

// SearchState tracks an incremental search between keystrokes.
type SearchState struct {
	LastMatch int // row of the last match, -1 for none
	Direction int // +1 forward, -1 backward

	savedRow int
	savedHL  []highlighter.Class
}

func newSearchState() SearchState {
	return SearchState{LastMatch: -1, Direction: 1, savedRow: -1}
}

// restore puts back the highlight of the row carrying the match overlay.
func (s *SearchState) restore(buffer *Buffer) {
	if s.savedHL == nil {
		return
	}
	buffer.RestoreHighlight(s.savedRow, s.savedHL)
	s.savedRow, s.savedHL = -1, nil
}

// Step handles one prompt key and moves to the next row containing query.
// Enter and Esc end the search and reset the state.
func (s *SearchState) Step(e *Editor, query string, key KeyEvent) {
	s.restore(e.buffer)

	switch key.Key {
	case KeyEnter, KeyEscape:
		s.LastMatch, s.Direction = -1, 1
		return
	case KeyDown:
		s.Direction = 1
	case KeyUp:
		s.Direction = -1
	default:
		s.LastMatch, s.Direction = -1, 1
	}
	if s.LastMatch == -1 {
		s.Direction = 1
	}
	if query == "" {
		return
	}

	numRows := e.buffer.Len()
	current := s.LastMatch
	for range numRows {
		current += s.Direction
		switch current {
		case -1:
			current = numRows - 1
		case numRows:
			current = 0
		}

		cx := e.buffer.Index(current, []byte(query))
		if cx < 0 {
			continue
		}
		s.LastMatch = current
		s.savedRow = current
		s.savedHL = e.buffer.OverlayMatch(current, e.buffer.CxToRx(current, cx), len(query))

		e.state.Cursor.Position = Position{Row: current, Col: cx}
		// Pushes the match row to the top of the window on the next scroll.
		e.state.Viewport.RowOff = numRows
		return
	}
}

// Find starts an incremental search. Esc returns the cursor and viewport to
// where they were before the search began.
func (e *Editor) Find() error {
	if e.state.Mode == PromptMode {
		return ErrPromptActive
	}
	savedCursor := e.state.Cursor
	savedViewport := e.state.Viewport
	e.search = newSearchState()

	return e.Prompt(
		"Search: %s (Use ESC/Arrows/Enter)",
		func(e *Editor, query string, key KeyEvent) {
			e.search.Step(e, query, key)
		},
		func(e *Editor, _ string, ok bool) {
			if !ok {
				e.state.Cursor = savedCursor
				e.state.Viewport.RowOff = savedViewport.RowOff
				e.state.Viewport.ColOff = savedViewport.ColOff
			}
		},
	)
}

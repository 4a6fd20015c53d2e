package core

import "fmt"

// PromptCallback runs after every key the prompt receives, including the
// key that commits or cancels it.
type PromptCallback func(editor *Editor, input string, key KeyEvent)

// PromptDone runs once when the prompt closes. ok is false on cancel.
type PromptDone func(editor *Editor, input string, ok bool)

// promptMode collects one line of input in the status message. format
// holds a single %s for the current input.
type promptMode struct {
	format string
	input  []byte
	onKey  PromptCallback
	onDone PromptDone
}

func (m *promptMode) Name() Mode { return PromptMode }

func (m *promptMode) Enter(editor *Editor) {
	m.input = m.input[:0]
	m.render(editor)
}

func (m *promptMode) Exit(editor *Editor) {
	m.onKey = nil
	m.onDone = nil
}

func (m *promptMode) HandleKey(editor *Editor, key KeyEvent) error {
	switch key.Key {
	case KeyBackspace, KeyCtrlBackspace, KeyDelete:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case KeyEscape:
		m.finish(editor, key, false)
		return nil

	case KeyEnter:
		if len(m.input) > 0 {
			m.finish(editor, key, true)
			return nil
		}

	case KeyNormal:
		if isPrintable(key.Byte) {
			m.input = append(m.input, key.Byte)
		}
	}

	if m.onKey != nil {
		m.onKey(editor, string(m.input), key)
	}
	m.render(editor)
	return nil
}

func (m *promptMode) finish(editor *Editor, key KeyEvent, ok bool) {
	input := string(m.input)
	onKey, onDone := m.onKey, m.onDone

	editor.SetStatusMessage("")
	if onKey != nil {
		onKey(editor, input, key)
	}
	editor.setMode(EditMode)
	if onDone != nil {
		onDone(editor, input, ok)
	}
}

func (m *promptMode) render(editor *Editor) {
	editor.SetStatusMessage(fmt.Sprintf(m.format, m.input))
}

// Prompt opens a one-line prompt in the status message. format must hold a
// single %s verb for the input typed so far.
func (e *Editor) Prompt(format string, onKey PromptCallback, onDone PromptDone) error {
	if e.state.Mode == PromptMode {
		return ErrPromptActive
	}
	m := e.modes[PromptMode].(*promptMode)
	m.format = format
	m.onKey = onKey
	m.onDone = onDone
	e.setMode(PromptMode)
	return nil
}

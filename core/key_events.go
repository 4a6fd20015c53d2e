package core

import "fmt"

// KeyCode is the closed set of logical keys the editor understands.
type KeyCode int

const (
	// KeyNormal carries a single opaque byte in KeyEvent.Byte.
	KeyNormal KeyCode = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyCtrlBackspace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete

	// Commands
	KeyQuit
	KeyRefresh
	KeySave
	KeyFind
)

// KeyEvent is one decoded keystroke.
type KeyEvent struct {
	Key  KeyCode
	Byte byte // set only for KeyNormal
}

// Key builds a KeyEvent for a non-byte key.
func Key(code KeyCode) KeyEvent { return KeyEvent{Key: code} }

// Byte builds a KeyNormal event.
func Byte(c byte) KeyEvent { return KeyEvent{Key: KeyNormal, Byte: c} }

// String returns the key name in the form used by key bindings, e.g.
// "ctrl+s", "pgup" or "a".
func (k KeyEvent) String() string {
	switch k.Key {
	case KeyNormal:
		return byteName(k.Byte)
	case KeyEscape:
		return "esc"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyCtrlBackspace:
		return "ctrl+h"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdown"
	case KeyDelete:
		return "delete"
	case KeyQuit:
		return "ctrl+q"
	case KeyRefresh:
		return "ctrl+l"
	case KeySave:
		return "ctrl+s"
	case KeyFind:
		return "ctrl+f"
	default:
		return fmt.Sprintf("key(%d)", int(k.Key))
	}
}

func byteName(c byte) string {
	switch {
	case c == 0:
		return "ctrl+@"
	case c == '\t':
		return "tab"
	case c == ' ':
		return "space"
	case c < 27:
		return "ctrl+" + string(rune('a'+c-1))
	case c < 32:
		return fmt.Sprintf("ctrl+%c", '@'+c)
	case c < 127:
		return string(rune(c))
	default:
		return fmt.Sprintf("0x%02x", c)
	}
}

// isPrintable reports whether c is accepted as prompt input.
func isPrintable(c byte) bool {
	return c >= 32 && c < 127
}

package adapter_terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var (
	ErrNotTerminal    = errors.New("not a terminal")
	ErrScreenTooSmall = errors.New("terminal too small")
)

// reservedRows are taken by the status bar and the message bar.
const reservedRows = 2

// Terminal owns the raw-mode state of the controlling terminal.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State
}

func NewTerminal(in, out *os.File) *Terminal {
	return &Terminal{in: in, out: out}
}

// EnableRawMode switches input to raw mode. Restore undoes it.
func (t *Terminal) EnableRawMode() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin: %w", ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Restore puts the terminal back the way EnableRawMode found it. It is
// safe to call more than once.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// TextArea returns the rows and columns available for buffer text.
func (t *Terminal) TextArea() (rows, cols int, err error) {
	width, height, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	if height <= reservedRows || width <= 0 {
		return 0, 0, fmt.Errorf("%dx%d: %w", width, height, ErrScreenTooSmall)
	}
	return height - reservedRows, width, nil
}

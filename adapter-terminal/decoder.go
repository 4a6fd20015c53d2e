package adapter_terminal

import (
	"bufio"
	"io"

	"github.com/ionut-t/gokilo/core"
)

const esc = 0x1b

func ctrl(c byte) byte { return c & 0x1f }

// Decoding tables. Anything missing from them degrades to core.KeyEscape.
var (
	controlKeys = map[byte]core.KeyCode{
		ctrl('q'): core.KeyQuit,
		ctrl('h'): core.KeyCtrlBackspace,
		ctrl('l'): core.KeyRefresh,
		ctrl('s'): core.KeySave,
		ctrl('f'): core.KeyFind,
		'\r':      core.KeyEnter,
		127:       core.KeyBackspace,
	}

	// ESC [ <letter>
	csiKeys = map[byte]core.KeyCode{
		'A': core.KeyUp,
		'B': core.KeyDown,
		'C': core.KeyRight,
		'D': core.KeyLeft,
		'H': core.KeyHome,
		'F': core.KeyEnd,
	}

	// ESC [ <digit> ~
	tildeKeys = map[byte]core.KeyCode{
		'1': core.KeyHome,
		'7': core.KeyHome,
		'3': core.KeyDelete,
		'4': core.KeyEnd,
		'8': core.KeyEnd,
		'5': core.KeyPageUp,
		'6': core.KeyPageDown,
	}

	// ESC O <letter>
	ss3Keys = map[byte]core.KeyCode{
		'H': core.KeyHome,
		'F': core.KeyEnd,
	}
)

type decodeState int

const (
	stateEscape decodeState = iota // after ESC
	stateCSI                       // after ESC [
	stateSS3                       // after ESC O
)

// maxParams bounds the parameter bytes kept for one CSI sequence. Longer
// sequences are still consumed but never match a key.
const maxParams = 8

// readBufferSize bounds how much of one terminal read the decoder holds. An
// ESC is only joined with bytes already buffered, so sequences split across
// a buffer refill decode as a lone ESC.
const readBufferSize = 64 << 10

// Decoder reads one logical key at a time from a raw-mode byte stream.
type Decoder struct {
	r *bufio.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReaderSize(r, readBufferSize)}
}

// Next blocks until one key is available and consumes exactly the bytes
// that make it up. The only error is the one from the underlying reader.
func (d *Decoder) Next() (core.KeyEvent, error) {
	c, err := d.r.ReadByte()
	if err != nil {
		return core.KeyEvent{}, err
	}
	if c != esc {
		return decodeByte(c), nil
	}
	return d.escape(), nil
}

func decodeByte(c byte) core.KeyEvent {
	if k, ok := controlKeys[c]; ok {
		return core.Key(k)
	}
	return core.Byte(c)
}

// escape runs the sequence state machine after an ESC byte. Only bytes
// that arrived with the ESC are examined, so a lone ESC never blocks.
func (d *Decoder) escape() core.KeyEvent {
	state := stateEscape
	params := make([]byte, 0, maxParams)
	unknown := false

	for d.r.Buffered() > 0 {
		c, err := d.r.ReadByte()
		if err != nil {
			break
		}

		switch state {
		case stateEscape:
			switch c {
			case '[':
				state = stateCSI
			case 'O':
				state = stateSS3
			default:
				return core.Key(core.KeyEscape)
			}

		case stateSS3:
			return lookup(ss3Keys, c)

		case stateCSI:
			switch {
			case c >= 0x30 && c <= 0x3f:
				if len(params) == maxParams {
					unknown = true
					continue
				}
				params = append(params, c)
			case c >= 0x20 && c <= 0x2f:
				unknown = true
			case c >= 0x40 && c <= 0x7e:
				if unknown {
					return core.Key(core.KeyEscape)
				}
				return finalCSI(params, c)
			default:
				return core.Key(core.KeyEscape)
			}
		}
	}
	return core.Key(core.KeyEscape)
}

func finalCSI(params []byte, final byte) core.KeyEvent {
	switch {
	case final == '~' && len(params) == 1:
		return lookup(tildeKeys, params[0])
	case len(params) == 0:
		return lookup(csiKeys, final)
	default:
		return core.Key(core.KeyEscape)
	}
}

func lookup(table map[byte]core.KeyCode, c byte) core.KeyEvent {
	if k, ok := table[c]; ok {
		return core.Key(k)
	}
	return core.Key(core.KeyEscape)
}

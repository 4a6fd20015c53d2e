package adapter_terminal

import (
	"github.com/atotto/clipboard"

	"github.com/ionut-t/gokilo/core"
)

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// NewClipboard returns the system clipboard, or nil when this platform has
// no clipboard tool.
func NewClipboard() core.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return SystemClipboard{}
}

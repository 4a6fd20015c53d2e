package core

import (
	"io/fs"
	"os"
)

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed raw byte column
}

// Clipboard is the system clipboard seen by the editor.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// Storage is the byte source and sink for files. The editor never touches
// the file system directly.
type Storage interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OSStorage implements Storage using the real OS file system.
type OSStorage struct{}

// ReadFile reads the entire file at name.
func (OSStorage) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile truncates or creates name and writes data to it.
func (OSStorage) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

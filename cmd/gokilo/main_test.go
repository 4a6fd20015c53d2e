package main

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/gokilo/core"
)

type memStorage map[string][]byte

func (m memStorage) ReadFile(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m memStorage) WriteFile(name string, data []byte, _ fs.FileMode) error {
	m[name] = data
	return nil
}

func TestOpenInitial_NoFileShowsHelp(t *testing.T) {
	e := core.New(core.DefaultOptions(), core.WithStorage(memStorage{}))

	require.NoError(t, openInitial(e, ""))
	assert.Equal(t, "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find", e.StatusMessage())
}

func TestOpenInitial_LoadsFileUnderHelp(t *testing.T) {
	e := core.New(core.DefaultOptions(), core.WithStorage(memStorage{"notes.txt": []byte("hello\n")}))

	require.NoError(t, openInitial(e, "notes.txt"))
	assert.Equal(t, []string{"hello"}, e.Buffer().Lines())
	assert.Equal(t, e.KeyMap().HelpMessage(), e.StatusMessage())
}

func TestOpenInitial_MissingFileKeepsWarning(t *testing.T) {
	e := core.New(core.DefaultOptions(), core.WithStorage(memStorage{}))

	require.NoError(t, openInitial(e, "missing.txt"), "a failed open does not end the session")
	assert.Equal(t, "Can't open missing.txt: file does not exist", e.StatusMessage())
	assert.Equal(t, "missing.txt", e.Buffer().FileName())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := expandHome("~/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes.txt"), path)

	path, err = expandHome("relative/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "relative/notes.txt", path)
}

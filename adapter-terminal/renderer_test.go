package adapter_terminal

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/gokilo/core"
	"github.com/ionut-t/gokilo/highlighter"
)

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func newEditor(rows, cols int, content string) *core.Editor {
	e := core.New(core.DefaultOptions())
	e.SetSize(rows, cols)
	if content != "" {
		e.SetContent([]byte(content))
	}
	return e
}

func drawFrame(t *testing.T, e *core.Editor) string {
	t.Helper()
	w := &countingWriter{}
	require.NoError(t, NewRenderer(w, "1.0").DrawFrame(e))
	assert.Equal(t, 1, w.writes, "one write per frame")
	return w.String()
}

// contentRows returns the text rows of a frame without their trailing
// clear-line and CRLF.
func contentRows(t *testing.T, frame string, n int) []string {
	t.Helper()
	body := strings.TrimPrefix(frame, hideCursor+cursorHome)
	rows := strings.Split(body, clearLine+"\r\n")
	require.Greater(t, len(rows), n)
	return rows[:n]
}

func TestRenderer_EmptyBufferFrame(t *testing.T) {
	e := newEditor(3, 40, "")

	want := hideCursor + cursorHome +
		"~" + clearLine + "\r\n" +
		"~     Gokilo editor -- version 1.0" + clearLine + "\r\n" +
		"~" + clearLine + "\r\n" +
		reverseVideo + "[No Name] - 0 lines " + strings.Repeat(" ", 9) + "no ft | 1/0" + resetStyle + "\r\n" +
		clearLine +
		"\x1b[1;1H" + showCursor

	assert.Equal(t, want, drawFrame(t, e))
}

func TestRenderer_BannerOnlyForEmptyBuffer(t *testing.T) {
	e := newEditor(3, 40, "x")
	frame := drawFrame(t, e)
	assert.NotContains(t, frame, "Gokilo editor")
	assert.Equal(t, []string{"x" + defaultColor, "~", "~"}, contentRows(t, frame, 3))
}

func TestRenderer_BannerTruncated(t *testing.T) {
	e := newEditor(1, 10, "")
	rows := contentRows(t, drawFrame(t, e), 1)
	assert.Equal(t, "Gokilo edi", rows[0])
}

func TestRenderer_Colors(t *testing.T) {
	e := newEditor(2, 40, "x = 12;\nif (y) 3")
	e.Buffer().SetHighlighter(highlighter.DefaultTable().Lookup("main.c"))

	rows := contentRows(t, drawFrame(t, e), 2)
	assert.Equal(t, "x = \x1b[31m12\x1b[39m;"+defaultColor, rows[0])
	assert.Equal(t, "\x1b[33mif\x1b[39m (y) \x1b[31m3"+defaultColor, rows[1])
}

func TestRenderer_ControlBytes(t *testing.T) {
	e := newEditor(2, 40, "a\x01b\x1f\n1\x02")
	e.Buffer().SetHighlighter(highlighter.DefaultTable().Lookup("main.c"))

	rows := contentRows(t, drawFrame(t, e), 2)
	assert.Equal(t, "a"+reverseVideo+"A"+resetStyle+"b"+reverseVideo+"?"+resetStyle+defaultColor, rows[0])
	assert.Equal(t, "\x1b[31m1"+reverseVideo+"B"+resetStyle+"\x1b[31m"+defaultColor, rows[1])
}

func TestRenderer_HorizontalScroll(t *testing.T) {
	e := newEditor(1, 3, "abcdef")
	require.NoError(t, e.HandleKey(core.Key(core.KeyEnd)))

	frame := drawFrame(t, e)
	assert.Equal(t, []string{"ef" + defaultColor}, contentRows(t, frame, 1))
	assert.True(t, strings.HasSuffix(frame, "\x1b[1;3H"+showCursor))
}

func TestRenderer_TabsAndCursorColumn(t *testing.T) {
	e := newEditor(2, 20, "a\n\tb")
	require.NoError(t, e.HandleKey(core.Key(core.KeyDown)))
	require.NoError(t, e.HandleKey(core.Key(core.KeyEnd)))

	frame := drawFrame(t, e)
	assert.Equal(t, "        b"+defaultColor, contentRows(t, frame, 2)[1])
	assert.True(t, strings.HasSuffix(frame, "\x1b[2;10H"+showCursor))
}

func TestRenderer_StatusBar(t *testing.T) {
	storage := memStorage{"a-very-long-file-name-indeed.go": []byte("package x\n")}
	e := core.New(core.DefaultOptions(), core.WithStorage(storage))
	e.SetSize(1, 60)
	require.NoError(t, e.Open("a-very-long-file-name-indeed.go"))
	require.NoError(t, e.HandleKey(core.Byte('/')))

	frame := drawFrame(t, e)
	left := "a-very-long-file-nam - 1 lines (modified)"
	right := "go | 1/1"
	assert.Contains(t, frame, reverseVideo+left+strings.Repeat(" ", 60-len(left)-len(right))+right+resetStyle+"\r\n")
}

func TestRenderer_StatusBarNarrow(t *testing.T) {
	e := newEditor(1, 10, "")
	frame := drawFrame(t, e)
	assert.Contains(t, frame, reverseVideo+"[No Name] "+resetStyle)
}

func TestRenderer_MessageBar(t *testing.T) {
	e := newEditor(1, 8, "")
	e.SetStatusMessage("hello world")

	frame := drawFrame(t, e)
	assert.Contains(t, frame, "\r\n"+clearLine+"hello wo\x1b[1;1H")
}

type memStorage map[string][]byte

func (s memStorage) ReadFile(name string) ([]byte, error) {
	return s[name], nil
}

func (s memStorage) WriteFile(name string, data []byte, _ fs.FileMode) error {
	s[name] = data
	return nil
}

package core

import (
	"fmt"
	"log"
	"time"

	"github.com/ionut-t/gokilo/highlighter"
)

// Options configures an Editor.
type Options struct {
	TabStop        int
	QuitTimes      int           // extra Quit presses required on a dirty buffer
	MessageTimeout time.Duration // how long a status message stays visible
	ChromaFallback bool          // use chroma for file types missing from Syntax
	Syntax         *highlighter.Table
}

// DefaultOptions returns the stock kilo behaviour with the built-in
// syntax table.
func DefaultOptions() Options {
	return Options{
		TabStop:        DefaultTabStop,
		QuitTimes:      1,
		MessageTimeout: 5 * time.Second,
		Syntax:         highlighter.DefaultTable(),
	}
}

// State is the session state seen by renderers.
type State struct {
	Cursor     Cursor
	Viewport   Viewport
	Mode       Mode
	StatusMsg  string
	StatusTime time.Time
	Quit       bool // set once a confirmed quit was requested
}

// Editor ties a Buffer to a cursor, a viewport and the active mode. It is
// not safe for concurrent use.
type Editor struct {
	buffer      *Buffer
	state       State
	currentMode EditorMode
	modes       map[Mode]EditorMode
	search      SearchState

	opts      Options
	keys      KeyMap
	clipboard Clipboard
	storage   Storage
	now       func() time.Time
	quitLeft  int
}

// EditorOption customizes the collaborators of an Editor.
type EditorOption func(*Editor)

// WithClipboard sets the clipboard used for copy and paste.
func WithClipboard(c Clipboard) EditorOption {
	return func(e *Editor) { e.clipboard = c }
}

// WithStorage replaces the OS file system.
func WithStorage(s Storage) EditorOption {
	return func(e *Editor) { e.storage = s }
}

// WithKeyMap replaces the command bindings.
func WithKeyMap(k KeyMap) EditorOption {
	return func(e *Editor) { e.keys = k }
}

// WithClock replaces time.Now for status message ageing.
func WithClock(now func() time.Time) EditorOption {
	return func(e *Editor) { e.now = now }
}

// New creates an editor holding an empty, unnamed buffer.
func New(opts Options, options ...EditorOption) *Editor {
	if opts.TabStop <= 0 {
		opts.TabStop = DefaultTabStop
	}
	if opts.QuitTimes < 0 {
		opts.QuitTimes = 0
	}

	e := &Editor{
		buffer:   NewBuffer(opts.TabStop),
		modes:    make(map[Mode]EditorMode),
		search:   newSearchState(),
		opts:     opts,
		keys:     DefaultKeyMap(),
		storage:  OSStorage{},
		now:      time.Now,
		quitLeft: opts.QuitTimes,
	}
	for _, option := range options {
		option(e)
	}

	e.modes[EditMode] = &editMode{}
	e.modes[PromptMode] = &promptMode{}
	e.setMode(EditMode)

	return e
}

func (e *Editor) setMode(name Mode) {
	next, ok := e.modes[name]
	if !ok {
		log.Printf("unknown mode %q", name)
		return
	}
	if e.currentMode != nil {
		e.currentMode.Exit(e)
	}
	e.currentMode = next
	e.state.Mode = name
	e.currentMode.Enter(e)
}

// Buffer returns the document being edited.
func (e *Editor) Buffer() *Buffer { return e.buffer }

// State returns a copy of the session state.
func (e *Editor) State() State { return e.state }

func (e *Editor) KeyMap() KeyMap { return e.keys }

func (e *Editor) Options() Options { return e.opts }

// SetSize sets the number of text rows and columns, excluding the two
// bars at the bottom of the screen.
func (e *Editor) SetSize(rows, cols int) {
	e.state.Viewport.Rows = max(rows, 0)
	e.state.Viewport.Cols = max(cols, 0)
}

// HandleKey feeds one key to the active mode and re-scrolls the viewport.
// Returned errors are rejected edits; the buffer is unchanged by them.
func (e *Editor) HandleKey(k KeyEvent) error {
	err := e.currentMode.HandleKey(e, k)
	e.ScrollViewport()
	return err
}

// ScrollViewport recomputes the cursor's rendered column and keeps the
// cursor inside the viewport.
func (e *Editor) ScrollViewport() {
	e.state.Cursor.RecomputeRX(e.buffer)
	e.state.Viewport.Scroll(e.state.Cursor)
}

// SetStatusMessage shows msg in the message bar and restarts its timeout.
func (e *Editor) SetStatusMessage(msg string) {
	e.state.StatusMsg = msg
	e.state.StatusTime = e.now()
}

// StatusMessage returns the status message while it is younger than the
// configured timeout.
func (e *Editor) StatusMessage() string {
	if e.state.StatusMsg == "" || e.now().Sub(e.state.StatusTime) >= e.opts.MessageTimeout {
		return ""
	}
	return e.state.StatusMsg
}

// FileType names the active highlighter, or "" for plain text.
func (e *Editor) FileType() string {
	if h := e.buffer.Highlighter(); h != nil {
		return h.Name()
	}
	return ""
}

// Open loads name into the buffer. A file that cannot be read leaves an
// empty buffer carrying that name and a status message.
func (e *Editor) Open(name string) error {
	e.buffer = NewBuffer(e.opts.TabStop)
	e.buffer.SetFileName(name)
	e.selectSyntax()
	e.state.Cursor = Cursor{}
	e.state.Viewport.RowOff, e.state.Viewport.ColOff = 0, 0

	content, err := e.storage.ReadFile(name)
	if err != nil {
		e.SetStatusMessage(fmt.Sprintf(OpenFailedMessage, name, err))
		return fmt.Errorf("open %s: %w", name, err)
	}
	e.buffer.Load(content)
	return nil
}

// SetContent replaces the buffer with content and keeps the file name.
func (e *Editor) SetContent(content []byte) {
	e.buffer.Load(content)
	e.state.Cursor = Cursor{}
	e.ScrollViewport()
}

func (e *Editor) selectSyntax() {
	e.buffer.SetHighlighter(highlighter.Select(e.opts.Syntax, e.buffer.FileName(), e.opts.ChromaFallback))
}

// Save writes the buffer to its file. An unnamed buffer asks for a name
// first; the write happens once the prompt is committed.
func (e *Editor) Save() {
	if e.buffer.FileName() != "" {
		e.write()
		return
	}

	err := e.Prompt(SaveAsPrompt, nil, func(e *Editor, name string, ok bool) {
		if !ok {
			e.SetStatusMessage(SaveAbortedMessage)
			return
		}
		e.buffer.SetFileName(name)
		e.selectSyntax()
		e.write()
	})
	if err != nil {
		log.Println("save:", err)
	}
}

func (e *Editor) write() {
	if e.buffer.FileName() == "" {
		log.Println("save:", ErrNoFileName)
		return
	}
	content := e.buffer.Bytes()
	if err := e.storage.WriteFile(e.buffer.FileName(), content, 0o644); err != nil {
		log.Printf("save %s: %v", e.buffer.FileName(), err)
		e.SetStatusMessage(fmt.Sprintf(SaveFailedMessage, err))
		return
	}
	e.buffer.MarkSaved()
	e.SetStatusMessage(fmt.Sprintf(BytesWrittenMessage, len(content)))
}

// requestQuit exits on a clean buffer. On a dirty buffer the first
// QuitTimes requests only warn.
func (e *Editor) requestQuit() {
	if e.buffer.Dirty() && e.quitLeft > 0 {
		e.SetStatusMessage(fmt.Sprintf(QuitWarningMessage, e.quitLeft))
		e.quitLeft--
		return
	}
	e.state.Quit = true
}

// ShouldQuit reports whether a confirmed quit was requested.
func (e *Editor) ShouldQuit() bool { return e.state.Quit }

// CopyLine writes the raw bytes of the cursor row to the clipboard.
func (e *Editor) CopyLine() {
	if e.clipboard == nil {
		e.SetStatusMessage(fmt.Sprintf(ClipboardFailMessage, ErrClipboardUnavailable))
		return
	}
	y := e.state.Cursor.Position.Row
	row := e.buffer.Row(y)
	if row == nil {
		return
	}
	if err := e.clipboard.Write(string(row.Raw)); err != nil {
		log.Println("copy:", err)
		e.SetStatusMessage(fmt.Sprintf(ClipboardFailMessage, err))
		return
	}
	e.SetStatusMessage(fmt.Sprintf(CopiedLineMessage, y+1))
}

// Paste inserts the clipboard text at the cursor.
func (e *Editor) Paste() error {
	if e.clipboard == nil {
		e.SetStatusMessage(fmt.Sprintf(ClipboardFailMessage, ErrClipboardUnavailable))
		return nil
	}
	text, err := e.clipboard.Read()
	if err != nil {
		log.Println("paste:", err)
		e.SetStatusMessage(fmt.Sprintf(ClipboardFailMessage, err))
		return nil
	}

	pos := e.state.Cursor.Position
	next, err := e.buffer.InsertText(pos.Row, pos.Col, []byte(text))
	e.state.Cursor.Position = next
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	return nil
}

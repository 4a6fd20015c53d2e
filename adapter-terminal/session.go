package adapter_terminal

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/ionut-t/gokilo/core"
)

// Session runs the draw/read/dispatch loop for one editor.
type Session struct {
	editor   *core.Editor
	decoder  *Decoder
	renderer *Renderer
}

func NewSession(editor *core.Editor, in io.Reader, out io.Writer, version string) *Session {
	return &Session{
		editor:   editor,
		decoder:  NewDecoder(in),
		renderer: NewRenderer(out, version),
	}
}

type keyResult struct {
	key core.KeyEvent
	err error
}

// Run repaints, then waits for the next key, until a confirmed quit, the
// end of input or cancellation of ctx. All three clear the screen and
// return nil. Keys are read on a separate goroutine, so cancellation does
// not wait for input; that goroutine stays blocked in the reader until it
// returns.
func (s *Session) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return s.renderer.Clear()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan keyResult)
	go s.readKeys(ctx, keys)

	for {
		if err := s.renderer.DrawFrame(s.editor); err != nil {
			return err
		}

		var next keyResult
		select {
		case <-ctx.Done():
			return s.renderer.Clear()
		case next = <-keys:
		}

		if errors.Is(next.err, io.EOF) {
			return s.renderer.Clear()
		}
		if next.err != nil {
			return next.err
		}

		if err := s.editor.HandleKey(next.key); err != nil {
			log.Printf("key %s: %v", next.key, err)
		}
		if s.editor.ShouldQuit() {
			return s.renderer.Clear()
		}
	}
}

// readKeys decodes keys until the reader fails or ctx is done. Only the
// loop in Run touches the editor.
func (s *Session) readKeys(ctx context.Context, keys chan<- keyResult) {
	for {
		key, err := s.decoder.Next()
		select {
		case keys <- keyResult{key: key, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

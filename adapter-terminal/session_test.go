package adapter_terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/gokilo/core"
)

func TestSession_TypeSaveQuit(t *testing.T) {
	storage := memStorage{}
	e := core.New(core.DefaultOptions(), core.WithStorage(storage))
	e.SetSize(5, 40)

	// Type, save as "out.txt", then quit the clean buffer.
	input := "hi\rthere\x1b[A\x1b[F!" + "\x13" + "out.txt\r" + "\x11"
	var out bytes.Buffer

	err := NewSession(e, strings.NewReader(input), &out, "test").Run(context.Background())
	require.NoError(t, err)

	assert.True(t, e.ShouldQuit())
	assert.Equal(t, "hi!\nthere\n", string(storage["out.txt"]))
	assert.True(t, strings.HasSuffix(out.String(), clearScreen+cursorHome))
}

func TestSession_DirtyQuitNeedsConfirmation(t *testing.T) {
	e := core.New(core.DefaultOptions())
	e.SetSize(5, 100)

	var out bytes.Buffer
	err := NewSession(e, strings.NewReader("x\x11"), &out, "test").Run(context.Background())
	require.NoError(t, err, "end of input ends the session")

	assert.False(t, e.ShouldQuit())
	assert.Contains(t, out.String(), "Press Ctrl-Q 1 more times to quit.")

	e2 := core.New(core.DefaultOptions())
	e2.SetSize(5, 40)
	err = NewSession(e2, strings.NewReader("x\x11\x11"), &out, "test").Run(context.Background())
	require.NoError(t, err)
	assert.True(t, e2.ShouldQuit())
}

func TestSession_IgnoresRejectedEdits(t *testing.T) {
	e := core.New(core.DefaultOptions())
	e.SetSize(5, 40)

	// Backspace and delete on an empty buffer are no-ops.
	var out bytes.Buffer
	err := NewSession(e, strings.NewReader("\x7f\x1b[3~a"), &out, "test").Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, e.Buffer().Lines())
}

func TestSession_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := core.New(core.DefaultOptions())
	var out bytes.Buffer
	err := NewSession(e, strings.NewReader("a"), &out, "test").Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, e.Buffer().Len(), "no key is handled after cancellation")
	assert.Equal(t, clearScreen+cursorHome, out.String())
}

func TestSession_CancelWhileWaitingForKey(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	e := core.New(core.DefaultOptions())
	e.SetSize(5, 40)

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- NewSession(e, pr, &out, "test").Run(ctx)
	}()

	// Write returns once "a" has been read; the next read blocks.
	_, err := pw.Write([]byte("a"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
	assert.True(t, strings.HasSuffix(out.String(), clearScreen+cursorHome))
}

package writer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

type trackingCloser struct {
	bytes.Buffer
	closed int
}

func (c *trackingCloser) Close() error {
	c.closed++
	return nil
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Line("void f()")
	w.BeginScope()
	w.Linef("return %d;", 1)
	w.EndScope()
	assert.NoError(t, w.Close())

	expected := "// clang-format off\n" +
		"\n" +
		"void f()\n" +
		"{\n" +
		"  return 1;\n" +
		"}\n" +
		"\n" +
		"// clang-format on\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriterIndent(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Indent()
	w.Indent()
	w.Line("x")
	w.EmptyLine()
	w.Deindent()
	w.Line("y")
	w.Deindent()
	assert.NoError(t, w.Close())

	assert.Equal(t, "// clang-format off\n\n    x\n\n  y\n\n// clang-format on\n", buf.String())
}

func TestWriterDeindentPanics(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	defer func() {
		msg, ok := recover().(string)
		assert.True(t, ok)
		assert.Equal(t, "writer: indent level below zero", msg)
	}()
	w.EndScope()
}

func TestWriterClose(t *testing.T) {
	out := &trackingCloser{}
	w := New(out)

	assert.NoError(t, w.Close())
	assert.Equal(t, 1, out.closed)

	err := w.Close()
	assert.True(t, errors.Is(err, ErrClosed))
	assert.Equal(t, 1, out.closed)

	w.Line("after close")
	assert.True(t, errors.Is(w.Err(), ErrClosed))
}

func TestWriterStickyError(t *testing.T) {
	w := New(failingWriter{})
	for range 10000 {
		w.Line("some generated text that fills the buffer")
	}

	assert.Error(t, w.Err())
	assert.True(t, errors.Is(w.Err(), errWrite))
	assert.True(t, errors.Is(w.Close(), errWrite))
}

// Package writer implements the indentation tracking text sink that the
// generators write their output to.
package writer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const indentStep = 2

const (
	headerLine = "// clang-format off"
	footerLine = "// clang-format on"
)

// ErrClosed is returned when a closed writer is closed again.
var ErrClosed = errors.New("writer already closed")

// Writer writes lines prefixed by the current indentation. The first write
// error is kept, all following writes are skipped and the error is returned
// by Err and Close.
type Writer struct {
	out    *bufio.Writer
	closer io.Closer
	indent int
	err    error
	closed bool
}

// New returns a writer that writes to the given output and starts with the
// generated code marker. If the output implements io.Closer it is closed by
// Close.
func New(output io.Writer) *Writer {
	w := &Writer{
		out: bufio.NewWriter(output),
	}
	if closer, ok := output.(io.Closer); ok {
		w.closer = closer
	}

	w.Line(headerLine)
	w.EmptyLine()
	return w
}

// Indent increases the indentation of following lines.
func (w *Writer) Indent() {
	w.indent += indentStep
}

// Deindent decreases the indentation of following lines. Decreasing below
// zero is a programming error and panics.
func (w *Writer) Deindent() {
	if w.indent < indentStep {
		panic("writer: indent level below zero")
	}
	w.indent -= indentStep
}

// BeginScope writes an opening brace and indents.
func (w *Writer) BeginScope() {
	w.Line("{")
	w.Indent()
}

// EndScope deindents and writes a closing brace.
func (w *Writer) EndScope() {
	w.Deindent()
	w.Line("}")
}

// Line writes one indented line.
func (w *Writer) Line(text string) {
	if w.err != nil {
		return
	}
	if w.closed {
		w.err = ErrClosed
		return
	}

	if _, err := w.out.WriteString(strings.Repeat(" ", w.indent)); err != nil {
		w.err = fmt.Errorf("writing indentation: %w", err)
		return
	}
	if _, err := w.out.WriteString(text); err != nil {
		w.err = fmt.Errorf("writing line: %w", err)
		return
	}
	if err := w.out.WriteByte('\n'); err != nil {
		w.err = fmt.Errorf("writing line end: %w", err)
	}
}

// Linef writes one indented line using a format string.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// EmptyLine writes a line without indentation.
func (w *Writer) EmptyLine() {
	if w.err != nil || w.closed {
		return
	}
	if err := w.out.WriteByte('\n'); err != nil {
		w.err = fmt.Errorf("writing empty line: %w", err)
	}
}

// Err returns the first error that occurred while writing.
func (w *Writer) Err() error {
	return w.err
}

// Close writes the end marker, flushes the buffered output and closes the
// underlying output. The output is released even if writing failed.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}

	w.EmptyLine()
	w.Line(footerLine)
	w.closed = true

	err := w.err
	if flushErr := w.out.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("flushing output: %w", flushErr)
	}
	if w.closer != nil {
		if closeErr := w.closer.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
	}
	return err
}

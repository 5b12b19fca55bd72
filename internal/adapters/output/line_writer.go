package output

import (
	"fmt"
	"io"

	"github.com/WhimsicallyDandy/minigrep/internal/core/ports"
)

// LineWriter implements ports.ResultWriter by printing each matching line to
// a writer, one per line, newline-terminated
type LineWriter struct {
	w     io.Writer
	count int
}

// NewLineWriter creates a LineWriter. In production w is os.Stdout.
func NewLineWriter(w io.Writer) ports.ResultWriter {
	return &LineWriter{w: w}
}

// WriteLine writes a single matching line. A write failure is fatal to the
// run, so the error is returned as-is for the caller to abort on.
func (lw *LineWriter) WriteLine(line string) error {
	if _, err := fmt.Fprintln(lw.w, line); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	lw.count++
	return nil
}

// Count returns the number of lines written
func (lw *LineWriter) Count() int {
	return lw.count
}

// Close is a no-op; the underlying writer is owned by the caller
func (lw *LineWriter) Close() error {
	return nil
}

package notify

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// TimestampingWriter wraps an io.Writer and prefixes every line with a
// wall-clock timestamp. Partial writes are buffered until a newline arrives,
// so a line assembled from several Write calls gets a single timestamp.
//
// Usage:
//
//	w := notify.NewTimestampingWriter(os.Stderr)
//	// ... pass w as the Writer for notify.WriteMessage calls ...
type TimestampingWriter struct {
	underlying io.Writer
	now        func() time.Time
	partial    bytes.Buffer
	mu         sync.Mutex
}

// NewTimestampingWriter creates a TimestampingWriter around the given writer.
func NewTimestampingWriter(underlying io.Writer) *TimestampingWriter {
	return &TimestampingWriter{
		underlying: underlying,
		now:        time.Now,
	}
}

// NewTimestampingWriterWithClock creates a TimestampingWriter with an explicit
// clock function, used by tests to produce deterministic prefixes.
func NewTimestampingWriterWithClock(
	underlying io.Writer,
	now func() time.Time,
) *TimestampingWriter {
	return &TimestampingWriter{
		underlying: underlying,
		now:        now,
	}
}

// Write implements io.Writer.
// Complete lines are emitted with a "[HH:MM:SS] " prefix; a trailing partial
// line is held back until its newline arrives or Flush is called.
func (w *TimestampingWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(data) == 0 {
		return 0, nil
	}

	w.partial.Write(data)

	for {
		line, err := w.partial.ReadString('\n')
		if err != nil {
			// No complete line yet. Put the remainder back and wait for more.
			w.partial.Reset()
			w.partial.WriteString(line)

			break
		}

		writeErr := w.writeLine(line)
		if writeErr != nil {
			return len(data), writeErr
		}
	}

	return len(data), nil
}

// Flush writes any buffered partial line, terminating it with a newline.
func (w *TimestampingWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.partial.Len() == 0 {
		return nil
	}

	line := w.partial.String() + "\n"
	w.partial.Reset()

	return w.writeLine(line)
}

func (w *TimestampingWriter) writeLine(line string) error {
	stamp := w.now().Format("15:04:05")

	_, err := fmt.Fprintf(w.underlying, "[%s] %s", stamp, line)
	if err != nil {
		return fmt.Errorf("write timestamped line: %w", err)
	}

	return nil
}

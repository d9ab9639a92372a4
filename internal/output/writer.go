package output

import (
	"io"

	"github.com/lgbarn/kwazam-go/internal/config"
)

// StateWriter is the interface for writing positions to output.
// Different implementations handle different formats (diagram, JSON).
type StateWriter interface {
	// WriteState writes a single position to the output.
	WriteState(v View) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewStateWriter returns the writer selected by cfg: JSON snapshots written
// one per call when JSONFormat is set, diagrams otherwise.
func NewStateWriter(w io.Writer, cfg *config.Config) StateWriter {
	if cfg != nil && cfg.JSONFormat {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes positions as board diagrams.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new diagram writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteState writes a diagram of v.
func (tw *TextWriter) WriteState(v View) error {
	return WriteBoard(tw.w, v)
}

// Flush is a no-op; diagrams are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the diagram writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers snapshots and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	states []*JSONState
	single bool // If true, write each snapshot immediately instead of batching
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		states: make([]*JSONState, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each snapshot immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteState converts v and buffers it, or writes it in single mode.
// Conversion happens at call time so later moves do not alter buffered
// snapshots.
func (jw *JSONWriter) WriteState(v View) error {
	js := ViewToJSON(v)
	if jw.single {
		return encodeJSON(jw.w, js)
	}
	jw.states = append(jw.states, js)
	return nil
}

// Flush writes all buffered snapshots as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.states) == 0 {
		return nil
	}
	err := encodeJSON(jw.w, &JSONOutput{States: jw.states})
	jw.states = jw.states[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

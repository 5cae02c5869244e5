// Package trace exposes the optional per-instruction execution trace the
// external interface documents: every executed cell, and every write it
// performs, appended to a file named by REDCODE_TRACE_FILE.
package trace

import (
	"fmt"
	"os"
	"sync"
)

// Sink receives one already-formatted trace line per call. Engine calls
// Line twice per executed instruction when the instruction writes: once
// for the fetch/operand line, once for the write line.
type Sink interface {
	Line(s string)
}

// NopSink discards everything; it is the default when tracing is off.
type NopSink struct{}

func (NopSink) Line(string) {}

// FileSink appends lines to an underlying file, truncated when opened so
// each round starts with a clean trace.
type FileSink struct {
	mu sync.Mutex
	f  *os.File
}

// NewFileSink truncates and opens path for append-only writing.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening trace file %s: %w", path, err)
	}
	return &FileSink{f: f}, nil
}

// Line writes l to the trace file. Safe for concurrent use so one sink
// can be shared across battles run in parallel.
func (s *FileSink) Line(l string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.f, l)
}

// Close releases the underlying file.
func (s *FileSink) Close() error {
	return s.f.Close()
}

// FromEnv returns a FileSink rooted at REDCODE_TRACE_FILE when the
// variable is set and non-empty, and a NopSink otherwise. enabled gates
// the whole mechanism the way a build tag would gate it in the reference
// implementation; this build always compiles tracing in, so enabled is
// normally true.
func FromEnv(enabled bool) (Sink, func() error, error) {
	noop := func() error { return nil }
	if !enabled {
		return NopSink{}, noop, nil
	}
	path := os.Getenv("REDCODE_TRACE_FILE")
	if path == "" {
		return NopSink{}, noop, nil
	}
	sink, err := NewFileSink(path)
	if err != nil {
		return nil, noop, err
	}
	return sink, sink.Close, nil
}

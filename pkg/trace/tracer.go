// Package trace implements the optional per-instruction disassembly
// sink (spec §4.6). It never affects guest semantics.
package trace

import (
	"bufio"
	"fmt"
	"os"
)

// Tracer writes one line per decoded instruction to an underlying
// file. It implements vm.TraceSink via Emit without importing package
// vm, keeping the dependency one-directional.
type Tracer struct {
	f *os.File
	w *bufio.Writer
}

// Open creates (or truncates) path and returns a Tracer writing to it.
// This is `logfile PATH` (spec §4.6/§6).
func Open(path string) (*Tracer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}
	return &Tracer{f: f, w: bufio.NewWriter(f)}, nil
}

// Emit writes one already-formatted disassembly line.
func (t *Tracer) Emit(line string) {
	fmt.Fprintln(t.w, line)
}

// Close flushes and closes the underlying file. This is `nolog`.
func (t *Tracer) Close() error {
	if err := t.w.Flush(); err != nil {
		t.f.Close()
		return err
	}
	return t.f.Close()
}

// File: fifo/scoped.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scoped write/read handles: prepare on creation, commit exactly once on
// Close. Pairing Write/Read with defer Close guarantees the commit runs on
// every exit path, including panics, so a prepared range can never be left
// stuck as neither free nor ready.

package fifo

import "github.com/momentics/hioload-fifo/api"

// ScopedWrite is a pending write grant. Fill the granted indices, then call
// Close to publish them. The embedded Range exposes the block layout and
// ForEach iteration.
type ScopedWrite struct {
	api.Range
	fifo *Fifo
	done bool
}

// Write prepares up to n slots for writing and wraps them in a scoped
// handle. The grant may be smaller than n, down to zero on a full Fifo;
// check Granted before relying on the full size. Producer side only.
func (f *Fifo) Write(n int) ScopedWrite {
	return ScopedWrite{Range: f.PrepareToWrite(n), fifo: f}
}

// Granted returns the total number of slots granted.
func (w *ScopedWrite) Granted() int { return w.Len() }

// Close commits the granted slots via FinishedWrite. Only the first call
// commits; later calls are no-ops.
func (w *ScopedWrite) Close() {
	if w.done || w.fifo == nil {
		return
	}
	w.done = true
	w.fifo.FinishedWrite(w.Len())
}

// ScopedRead is a pending read grant, symmetric to ScopedWrite.
type ScopedRead struct {
	api.Range
	fifo *Fifo
	done bool
}

// Read prepares up to n slots for reading and wraps them in a scoped
// handle. Consumer side only.
func (f *Fifo) Read(n int) ScopedRead {
	return ScopedRead{Range: f.PrepareToRead(n), fifo: f}
}

// Granted returns the total number of slots granted.
func (r *ScopedRead) Granted() int { return r.Len() }

// Close releases the granted slots via FinishedRead. Only the first call
// commits; later calls are no-ops.
func (r *ScopedRead) Close() {
	if r.done || r.fifo == nil {
		return
	}
	r.done = true
	r.fifo.FinishedRead(r.Len())
}

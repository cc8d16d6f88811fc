// File: fifo/fifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer circular index allocator.
//
// Fifo partitions a fixed circular index space into a "ready to read" region
// and a "free to write" region. It owns no data: one producer thread and one
// consumer thread use the granted index ranges to copy through a buffer they
// allocate themselves. Cursors are atomic and padded to separate the two
// sides' cache lines; no operation blocks, allocates, or spins.

package fifo

import (
	"sync/atomic"

	"github.com/momentics/hioload-fifo/api"
)

// Ensure compile-time interface compliance.
var _ api.IndexFifo = (*Fifo)(nil)

// Fifo is the allocator state: a consumer cursor, a producer cursor and the
// capacity. One slot is always kept unoccupied so that equal cursors mean
// empty, never full. A Fifo of capacity n therefore holds at most n-1 ready
// slots.
//
// validStart is advanced only by the consumer, validEnd only by the
// producer; each side merely loads the other side's cursor. Go's sync/atomic
// loads and stores are sequentially consistent, so a FinishedWrite cursor
// store publishes the caller's buffer writes before the consumer can observe
// the new ready count.
type Fifo struct {
	bufferSize int64
	validStart atomic.Int64 // consumer cursor: oldest unread slot
	_          [64]byte     // padding to keep the cursors on separate cache lines
	validEnd   atomic.Int64 // producer cursor: next slot free for writing
	_          [64]byte
}

// NewFifo creates an allocator over capacity slots. Negative capacity is a
// programmer error and panics; zero capacity yields a permanently empty
// allocator.
func NewFifo(capacity int) *Fifo {
	if capacity < 0 {
		panic("fifo: capacity must be non-negative")
	}
	return &Fifo{bufferSize: int64(capacity)}
}

// TotalSize returns the fixed capacity in slots.
func (f *Fifo) TotalSize() int { return int(f.bufferSize) }

// NumReady returns how many slots are written but not yet read.
func (f *Fifo) NumReady() int {
	vs := f.validStart.Load()
	ve := f.validEnd.Load()
	if ve >= vs {
		return int(ve - vs)
	}
	return int(f.bufferSize - (vs - ve))
}

// FreeSpace returns how many slots a write can currently be granted.
func (f *Fifo) FreeSpace() int {
	free := int(f.bufferSize) - f.NumReady() - 1
	if free < 0 {
		return 0
	}
	return free
}

// Reset empties the allocator. Requires exclusive access: no concurrent
// prepare or finish may be in flight.
func (f *Fifo) Reset() {
	f.validEnd.Store(0)
	f.validStart.Store(0)
}

// SetTotalSize changes the capacity and empties the allocator. Requires
// exclusive access, like Reset.
func (f *Fifo) SetTotalSize(newSize int) {
	if newSize < 0 {
		panic("fifo: capacity must be non-negative")
	}
	f.Reset()
	f.bufferSize = int64(newSize)
}

// PrepareToWrite computes up to n free slots starting at the producer
// cursor, split into at most two blocks when the free region wraps. No state
// changes until FinishedWrite, so repeated prepares return the same range.
// Producer side only.
func (f *Fifo) PrepareToWrite(n int) api.Range {
	vs := f.validStart.Load()
	ve := f.validEnd.Load()

	var free int64
	if ve >= vs {
		free = f.bufferSize - (ve - vs)
	} else {
		free = vs - ve
	}

	// One slot stays unoccupied: granting all of free would make the
	// cursors collide and read as empty.
	granted := int64(n)
	if granted > free-1 {
		granted = free - 1
	}
	if granted <= 0 {
		return api.Range{StartIndex1: int(ve)}
	}

	block1 := f.bufferSize - ve
	if block1 > granted {
		block1 = granted
	}
	return api.Range{
		StartIndex1: int(ve),
		BlockSize1:  int(block1),
		StartIndex2: 0,
		BlockSize2:  int(granted - block1),
	}
}

// FinishedWrite advances the producer cursor by n slots, publishing them to
// the consumer. n is clamped to the currently free space, so a misbehaving
// caller cannot push the cursors past each other. Producer side only.
func (f *Fifo) FinishedWrite(n int) {
	if n <= 0 || f.bufferSize == 0 {
		return
	}
	if free := f.FreeSpace(); n > free {
		n = free
	}
	ve := f.validEnd.Load() + int64(n)
	if ve >= f.bufferSize {
		ve -= f.bufferSize
	}
	f.validEnd.Store(ve)
}

// PrepareToRead computes up to n ready slots starting at the consumer
// cursor, with the same two-block wraparound rule as PrepareToWrite.
// Consumer side only.
func (f *Fifo) PrepareToRead(n int) api.Range {
	vs := f.validStart.Load()
	ve := f.validEnd.Load()

	var ready int64
	if ve >= vs {
		ready = ve - vs
	} else {
		ready = f.bufferSize - (vs - ve)
	}

	granted := int64(n)
	if granted > ready {
		granted = ready
	}
	if granted <= 0 {
		return api.Range{StartIndex1: int(vs)}
	}

	block1 := f.bufferSize - vs
	if block1 > granted {
		block1 = granted
	}
	return api.Range{
		StartIndex1: int(vs),
		BlockSize1:  int(block1),
		StartIndex2: 0,
		BlockSize2:  int(granted - block1),
	}
}

// FinishedRead advances the consumer cursor by n slots, releasing them to
// the producer as free space. n is clamped to the current ready count.
// Consumer side only.
func (f *Fifo) FinishedRead(n int) {
	if n <= 0 || f.bufferSize == 0 {
		return
	}
	if ready := f.NumReady(); n > ready {
		n = ready
	}
	vs := f.validStart.Load() + int64(n)
	if vs >= f.bufferSize {
		vs -= f.bufferSize
	}
	f.validStart.Store(vs)
}

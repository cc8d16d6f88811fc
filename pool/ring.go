// File: pool/ring.go
// Author: momentics <momentics@gmail.com>
//
// Lock-free SPSC ring buffer for cross-thread data transfer, backed by the
// fifo index allocator. Unlike a mask-based ring, any positive capacity
// works, not just powers of two.

package pool

import (
	"github.com/momentics/hioload-fifo/api"
	"github.com/momentics/hioload-fifo/fifo"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a lock-free fixed-capacity SPSC ring buffer.
type RingBuffer[T any] struct {
	idx  *fifo.Fifo
	data []T
}

// NewRingBuffer allocates a ring buffer holding up to capacity items.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		panic("pool: ring buffer capacity must be positive")
	}
	// The allocator keeps one slot unoccupied to tell full from empty, so
	// size it one past the requested capacity.
	return &RingBuffer[T]{
		idx:  fifo.NewFifo(capacity + 1),
		data: make([]T, capacity+1),
	}
}

// Enqueue adds an item; returns false if full. Producer side only.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	w := r.idx.Write(1)
	defer w.Close()
	if w.Granted() == 0 {
		return false
	}
	// A single-slot grant never wraps.
	r.data[w.StartIndex1] = item
	return true
}

// Dequeue removes and returns (item, ok); ok==false if empty. Consumer side
// only.
func (r *RingBuffer[T]) Dequeue() (res T, ok bool) {
	rd := r.idx.Read(1)
	defer rd.Close()
	if rd.Granted() == 0 {
		return res, false
	}
	var zero T
	res = r.data[rd.StartIndex1]
	r.data[rd.StartIndex1] = zero // drop the slot's reference for GC
	return res, true
}

// Len returns number of items in the buffer.
func (r *RingBuffer[T]) Len() int {
	return r.idx.NumReady()
}

// Cap returns logical buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return r.idx.TotalSize() - 1
}

// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts and shared value types for the lock-free SPSC index allocator.

package api

// Range describes the index blocks granted by a prepare call.
//
// Block 1 never wraps. Block 2 is non-empty only when the grant wrapped past
// the end of the circular buffer, and then always starts at index 0. The two
// blocks together cover the granted size, which may be less than requested.
type Range struct {
	StartIndex1 int
	BlockSize1  int
	StartIndex2 int
	BlockSize2  int
}

// Len returns the total granted size across both blocks.
func (r Range) Len() int { return r.BlockSize1 + r.BlockSize2 }

// ForEach invokes fn for every granted index, block 1 first, in order.
func (r Range) ForEach(fn func(index int)) {
	for i := r.StartIndex1; i < r.StartIndex1+r.BlockSize1; i++ {
		fn(i)
	}
	for i := r.StartIndex2; i < r.StartIndex2+r.BlockSize2; i++ {
		fn(i)
	}
}

// IndexFifo is the contract for a single-producer/single-consumer circular
// index allocator. It owns no data: callers copy through the granted index
// ranges into a buffer they manage themselves.
//
// Prepare calls are side-effect free; only the Finished calls advance the
// cursors and publish the operation to the opposite side. All operations are
// non-blocking and O(1).
type IndexFifo interface {
	// TotalSize returns the fixed capacity in slots.
	TotalSize() int

	// FreeSpace returns how many slots a write can currently be granted.
	FreeSpace() int

	// NumReady returns how many slots are written but not yet read.
	NumReady() int

	// PrepareToWrite computes up to n free slots without committing.
	// Producer side only.
	PrepareToWrite(n int) Range

	// FinishedWrite publishes n written slots to the consumer.
	// Producer side only.
	FinishedWrite(n int)

	// PrepareToRead computes up to n ready slots without committing.
	// Consumer side only.
	PrepareToRead(n int) Range

	// FinishedRead releases n consumed slots back to the producer.
	// Consumer side only.
	FinishedRead(n int)
}

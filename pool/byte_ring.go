// File: pool/byte_ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSC byte stream over a fixed circular buffer. The fifo allocator hands
// out index ranges; this type owns the byte buffer and does the two-segment
// copies, so callers get a plain Write/Read surface suitable for feeding an
// audio callback or a background file writer.

package pool

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/hioload-fifo/api"
	"github.com/momentics/hioload-fifo/fifo"
)

// ByteRing is a lock-free SPSC byte ring. Write is producer-side only, Read
// is consumer-side only; both are non-blocking and return short counts under
// backpressure.
type ByteRing struct {
	idx *fifo.Fifo
	buf []byte

	bytesIn  atomic.Int64
	bytesOut atomic.Int64
}

// NewByteRing allocates a ring holding up to capacity bytes.
func NewByteRing(capacity int) (*ByteRing, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("pool: byte ring capacity %d: %w", capacity, api.ErrInvalidArgument)
	}
	return &ByteRing{
		idx: fifo.NewFifo(capacity + 1),
		buf: make([]byte, capacity+1),
	}, nil
}

// Write copies up to len(p) bytes into the ring and returns the number
// actually written. A short count means the ring is full; retry policy is
// the caller's concern.
func (b *ByteRing) Write(p []byte) int {
	w := b.idx.Write(len(p))
	n := copy(b.buf[w.StartIndex1:w.StartIndex1+w.BlockSize1], p)
	n += copy(b.buf[:w.BlockSize2], p[n:])
	w.Close()
	b.bytesIn.Add(int64(n))
	return n
}

// Read copies up to len(p) bytes out of the ring and returns the number
// actually read. A short count means the ring is empty.
func (b *ByteRing) Read(p []byte) int {
	r := b.idx.Read(len(p))
	n := copy(p, b.buf[r.StartIndex1:r.StartIndex1+r.BlockSize1])
	n += copy(p[n:], b.buf[:r.BlockSize2])
	r.Close()
	b.bytesOut.Add(int64(n))
	return n
}

// Buffered returns the number of bytes ready to read.
func (b *ByteRing) Buffered() int { return b.idx.NumReady() }

// Free returns the number of bytes that can currently be written.
func (b *ByteRing) Free() int { return b.idx.FreeSpace() }

// Cap returns the ring capacity in bytes.
func (b *ByteRing) Cap() int { return b.idx.TotalSize() - 1 }

// BytesIn returns the running total of bytes written.
func (b *ByteRing) BytesIn() int64 { return b.bytesIn.Load() }

// BytesOut returns the running total of bytes read.
func (b *ByteRing) BytesOut() int64 { return b.bytesOut.Load() }

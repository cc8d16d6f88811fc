// Package api
// Author: momentics@gmail.com
//
// Lock-free ring buffer contract for single-producer/single-consumer use.

package api

// Ring is a lock-free SPSC ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full. Producer side only.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty. Consumer side only.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

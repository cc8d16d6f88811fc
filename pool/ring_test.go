// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// ring_test.go — Property-based and SPSC tests for the allocator-backed
// ring buffer.
package pool

import (
	"math/rand"
	"sync"
	"testing"
	"time"
)

func TestRingBufferBasic(t *testing.T) {
	ring := NewRingBuffer[int](4)
	if ring.Cap() != 4 {
		t.Fatalf("Cap = %d, want 4", ring.Cap())
	}

	for i := 0; i < 4; i++ {
		if !ring.Enqueue(i) {
			t.Fatalf("Enqueue(%d) failed on non-full ring", i)
		}
	}
	if ring.Enqueue(99) {
		t.Error("Enqueue succeeded on full ring")
	}

	for i := 0; i < 4; i++ {
		v, ok := ring.Dequeue()
		if !ok || v != i {
			t.Fatalf("Dequeue = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
	if _, ok := ring.Dequeue(); ok {
		t.Error("Dequeue succeeded on empty ring")
	}
}

func TestRingBufferAnyCapacity(t *testing.T) {
	// No power-of-two restriction: the index allocator does the wraparound.
	ring := NewRingBuffer[string](10)
	if ring.Cap() != 10 {
		t.Fatalf("Cap = %d, want 10", ring.Cap())
	}
	for i := 0; i < 25; i++ {
		if !ring.Enqueue("x") {
			t.Fatalf("Enqueue failed at %d", i)
		}
		if _, ok := ring.Dequeue(); !ok {
			t.Fatalf("Dequeue failed at %d", i)
		}
	}
	if ring.Len() != 0 {
		t.Errorf("Len = %d, want 0", ring.Len())
	}
}

func TestRingBufferInvalidCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewRingBuffer(0) did not panic")
		}
	}()
	NewRingBuffer[int](0)
}

// TestRingBufferPropertyBased performs randomized operations to check key
// invariants.
func TestRingBufferPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		ring := NewRingBuffer[int](64)

		size := 0
		for i := 0; i < 5000; i++ {
			switch rnd.Intn(2) {
			case 0:
				if ring.Enqueue(rnd.Intn(100000)) {
					size++
				}
			case 1:
				if _, ok := ring.Dequeue(); ok {
					size--
				}
			}
			if size != ring.Len() {
				t.Errorf("seed %d: size mismatch: expected %d, got %d", seed, size, ring.Len())
			}
			if ring.Len() < 0 || ring.Len() > 64 {
				t.Fatalf("seed %d: ring length out of bounds: %d", seed, ring.Len())
			}
		}
	}
}

// TestRingBufferSPSCOrder runs one producer and one consumer in parallel and
// checks strict FIFO ordering end to end.
func TestRingBufferSPSCOrder(t *testing.T) {
	const N = 50000
	ring := NewRingBuffer[int](33)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < N; i++ {
			for !ring.Enqueue(i) {
				time.Sleep(time.Microsecond)
			}
		}
	}()

	for i := 0; i < N; i++ {
		for {
			v, ok := ring.Dequeue()
			if !ok {
				time.Sleep(time.Microsecond)
				continue
			}
			if v != i {
				t.Fatalf("out of order: got %d, want %d", v, i)
			}
			break
		}
	}
	wg.Wait()
}

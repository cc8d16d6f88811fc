// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// metrics_test.go — Registry, probe and collector tests.
package control

import (
	"testing"

	"github.com/momentics/hioload-fifo/fifo"
)

func TestMetricsRegistrySetAdd(t *testing.T) {
	reg := NewMetricsRegistry()
	reg.Set("mode", "spsc")
	reg.Add("writes", 3)
	reg.Add("writes", 4)

	snap := reg.Snapshot()
	if snap["mode"] != "spsc" {
		t.Errorf("mode = %v, want spsc", snap["mode"])
	}
	if snap["writes"] != int64(7) {
		t.Errorf("writes = %v, want 7", snap["writes"])
	}

	// Snapshot is a copy, not a live view.
	snap["writes"] = int64(0)
	if reg.Snapshot()["writes"] != int64(7) {
		t.Error("mutating a snapshot leaked into the registry")
	}
}

func TestFifoCollector(t *testing.T) {
	f := fifo.NewFifo(10)
	f.FinishedWrite(4)

	reg := NewMetricsRegistry()
	col := NewFifoCollector(reg, "pipe", f)
	col.Collect()

	snap := reg.Snapshot()
	if snap["pipe.total"] != int64(10) {
		t.Errorf("pipe.total = %v, want 10", snap["pipe.total"])
	}
	if snap["pipe.ready"] != int64(4) {
		t.Errorf("pipe.ready = %v, want 4", snap["pipe.ready"])
	}
	if snap["pipe.free"] != int64(5) {
		t.Errorf("pipe.free = %v, want 5", snap["pipe.free"])
	}
}

func TestFifoCollectorProbe(t *testing.T) {
	f := fifo.NewFifo(8)
	f.FinishedWrite(2)

	probes := NewDebugProbes()
	col := NewFifoCollector(NewMetricsRegistry(), "pipe", f)
	probes.RegisterProbe("pipe", col.Probe())

	state := probes.DumpState()
	occ, ok := state["pipe"].(map[string]int)
	if !ok {
		t.Fatalf("probe output has wrong type: %T", state["pipe"])
	}
	if occ["ready"] != 2 || occ["free"] != 5 || occ["total"] != 8 {
		t.Errorf("probe occupancy = %v, want ready 2 free 5 total 8", occ)
	}
}

// control/fifo_stats.go
// Author: momentics <momentics@gmail.com>
//
// Publishes allocator occupancy into a MetricsRegistry and exposes it as a
// debug probe. Sampling races benignly with the producer/consumer: the
// queries are advisory and each value is individually consistent.

package control

import "github.com/momentics/hioload-fifo/api"

// FifoCollector samples one IndexFifo under a name prefix.
type FifoCollector struct {
	reg  *MetricsRegistry
	name string
	fifo api.IndexFifo
}

// NewFifoCollector binds a fifo to a registry under the given name.
func NewFifoCollector(reg *MetricsRegistry, name string, f api.IndexFifo) *FifoCollector {
	return &FifoCollector{reg: reg, name: name, fifo: f}
}

// Collect writes the current occupancy into the registry.
func (c *FifoCollector) Collect() {
	c.reg.Set(c.name+".total", int64(c.fifo.TotalSize()))
	c.reg.Set(c.name+".ready", int64(c.fifo.NumReady()))
	c.reg.Set(c.name+".free", int64(c.fifo.FreeSpace()))
}

// Probe returns a hook suitable for DebugProbes.RegisterProbe.
func (c *FifoCollector) Probe() func() any {
	return func() any {
		return map[string]int{
			"total": c.fifo.TotalSize(),
			"ready": c.fifo.NumReady(),
			"free":  c.fifo.FreeSpace(),
		}
	}
}

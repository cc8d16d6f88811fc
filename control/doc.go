// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-fifo.
//
// Provides concurrent-safe observability primitives:
//   - Metrics registry with dynamic key registration
//   - Debug probe registration and state dumps
//   - A collector that publishes allocator and ring occupancy
//
// Everything here is advisory: the registry samples the allocator's
// eventually consistent queries and never participates in the prepare/commit
// protocol itself.
package control

// Package metrics samples Go runtime memory statistics around benchmark runs.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by application
	TotalAlloc  uint64 // cumulative bytes allocated
	Mallocs     uint64 // cumulative heap objects allocated
	NumGC       uint32 // number of completed GC cycles
	HeapObjects uint64 // number of allocated heap objects
}

// MemoryDelta is the difference between two snapshots.
type MemoryDelta struct {
	TotalAlloc uint64
	Mallocs    uint64
	NumGC      uint32
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		TotalAlloc:  m.TotalAlloc,
		Mallocs:     m.Mallocs,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}

// Since returns the cumulative allocation counters accrued after before.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		TotalAlloc: s.TotalAlloc - before.TotalAlloc,
		Mallocs:    s.Mallocs - before.Mallocs,
		NumGC:      s.NumGC - before.NumGC,
	}
}

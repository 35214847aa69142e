package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.TotalAlloc == 0 {
		t.Error("TotalAlloc should be > 0")
	}
}

var sink []byte

func TestMemorySnapshot_Since(t *testing.T) {
	mc := NewMemoryCollector()
	before := mc.Snapshot()

	sink = make([]byte, 1<<20)

	delta := mc.Snapshot().Since(before)
	if delta.TotalAlloc < 1<<20 {
		t.Errorf("TotalAlloc delta = %d, want >= %d", delta.TotalAlloc, 1<<20)
	}
	if delta.Mallocs == 0 {
		t.Error("Mallocs delta should be > 0")
	}
}

package sysmon

import (
	"runtime"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	Sample()
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
		t.Skipf("memory sampling not checked on %s", runtime.GOOS)
	}
	if s := Sample(); s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestFeatures_NoDuplicates(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Features() {
		if seen[f] {
			t.Errorf("feature %q listed twice", f)
		}
		seen[f] = true
	}
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		for _, f := range []string{"bmi2", "adx", "avx2", "avx512f"} {
			if seen[f] {
				t.Errorf("x86 feature %q reported on %s", f, runtime.GOARCH)
			}
		}
	}
}

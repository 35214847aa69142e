// Package sysmon samples host resource usage and CPU features for benchmark
// reports.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a system-wide CPU and memory snapshot. CPU usage is the
// delta since the previous call, so the first call in a process primes the
// counter. Fields are zero when the platform does not expose a value.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Features lists the CPU extensions that speed up multiword shifts and
// carries on this machine.
func Features() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	add(xcpu.X86.HasBMI2, "bmi2")
	add(xcpu.X86.HasADX, "adx")
	add(xcpu.X86.HasAVX2, "avx2")
	add(xcpu.X86.HasAVX512F, "avx512f")
	add(xcpu.ARM64.HasASIMD, "asimd")
	add(xcpu.ARM64.HasSVE, "sve")
	return out
}

package config

import "runtime"

// ApplyAdaptiveDefaults fills hardware-dependent settings left at their zero
// value. Explicit flag or environment values are preserved.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers()
	}
	return cfg
}

// EstimateOptimalWorkers returns the benchmark worker count for this machine.
// Each worker shifts values it owns, so one goroutine per CPU saturates the
// machine without contention.
func EstimateOptimalWorkers() int {
	return runtime.GOMAXPROCS(0)
}

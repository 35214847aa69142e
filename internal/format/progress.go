package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps estimates produced from very slow early progress.
const maxETA = 24 * time.Hour

// ProgressBar renders progress in [0, 1] as a bar of length runes.
// Values outside the range are clamped.
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// EstimateETA extrapolates the remaining time from the fraction done after
// elapsed. It returns 0 while no estimate is possible.
func EstimateETA(progress float64, elapsed time.Duration) time.Duration {
	if progress <= 0 || elapsed <= 0 {
		return 0
	}
	if progress >= 1 {
		return 0
	}
	remaining := float64(elapsed) * (1 - progress) / progress
	if remaining > float64(maxETA) {
		return maxETA
	}
	return time.Duration(remaining)
}

// FormatProgressBarWithETA renders "<bar> 42.0% ETA 3s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%s %5.1f%% ETA %s", ProgressBar(progress, width), clampPct(progress), FormatETA(eta))
}

func clampPct(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 100
	}
	return p * 100
}

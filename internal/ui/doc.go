// Package ui provides the color themes used by the command-line output.
// It exposes ANSI color helpers for plain text and lipgloss styles for the
// tables printed after a shift or a benchmark run. Color output honors the
// NO_COLOR environment variable and the -no-color flag.
package ui

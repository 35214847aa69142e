// Package logging provides the structured logging interface used by the
// CLI, service and benchmark layers. It hides zerolog behind a small Logger
// interface so callers can swap in NopLogger or a test double.
package logging

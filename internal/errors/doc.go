// Package apperrors defines the structured error types and process exit
// codes shared by the CLI, the HTTP service and the benchmark runner.
//
// Error Wrapping Guidelines:
// Errors are wrapped with fmt.Errorf and %w. Every type carrying a cause
// implements Unwrap() so errors.Is and errors.As see through it, which is how
// ExitCodeFor finds a bignum overflow several layers down.
package apperrors

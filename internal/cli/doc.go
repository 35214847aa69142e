// Package cli renders shift results, benchmark reports and progress for the
// command-line front end.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
package cli

// Package format holds pure string formatting helpers shared by the CLI
// presentation code: durations, byte sizes, grouped numbers and progress
// bars with ETA.
package format

// Package bench runs a concurrent stress benchmark of bignum.ShiftLeft.
//
// A pool of random valid inputs and shift amounts is generated up front so
// the workers measure only the shift. Every worker shifts private copies of
// pool entries and checks the representation invariants after each call,
// which makes the benchmark double as a race and atomicity check when run
// under the race detector.
package bench

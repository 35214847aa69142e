// Package bignum implements a fixed-capacity unsigned big integer and an
// in-place logical left shift over it.
//
// A Nat stores CapacityWords machine words with index 0 holding the least
// significant word. The shift either completes and leaves the value
// normalized, or fails with ErrOverflow and leaves the value untouched.
// Nothing in this package allocates on the shift path or keeps global state,
// so distinct values may be shifted concurrently without synchronization.
package bignum

package bignum

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument is returned when the target Nat is nil.
	ErrNilArgument = errors.New("bignum: nil argument")
	// ErrOverflow matches every *OverflowError via errors.Is.
	ErrOverflow = errors.New("bignum: shift overflows capacity")
	// ErrNegative is returned when a negative number is converted to a Nat.
	ErrNegative = errors.New("bignum: negative value")
)

// OverflowError reports a shift whose result would need a bit at or above
// the storage capacity.
type OverflowError struct {
	// HighestBit is the position of the most significant set bit before the shift.
	HighestBit int
	// Shift is the requested shift amount in bits.
	Shift uint
	// CapacityBits is the number of bits available in the storage.
	CapacityBits int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("bignum: shifting bit %d left by %d exceeds capacity of %d bits",
		e.HighestBit, e.Shift, e.CapacityBits)
}

// Is makes errors.Is(err, ErrOverflow) true for any *OverflowError.
func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// CapacityError reports a value that does not fit in a Nat.
type CapacityError struct {
	// BitLen is the bit length of the rejected value.
	BitLen int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("bignum: value of %d bits exceeds capacity of %d bits", e.BitLen, CapacityBits)
}

// Is makes errors.Is(err, ErrOverflow) true for any *CapacityError.
func (e *CapacityError) Is(target error) bool { return target == ErrOverflow }

// Status is the numeric outcome code of a shift.
type Status int8

// Status codes. The numeric values are part of the public contract.
const (
	StatusSuccess     Status = 0
	StatusNilArgument Status = -1
	StatusOverflow    Status = -2
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNilArgument:
		return "nil argument"
	case StatusOverflow:
		return "overflow"
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}

// StatusOf maps an error returned by ShiftLeft to its Status. The boolean is
// false for errors that did not originate in this package.
func StatusOf(err error) (Status, bool) {
	switch {
	case err == nil:
		return StatusSuccess, true
	case errors.Is(err, ErrNilArgument):
		return StatusNilArgument, true
	case errors.Is(err, ErrOverflow):
		return StatusOverflow, true
	}
	return 0, false
}

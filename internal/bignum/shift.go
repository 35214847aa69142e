package bignum

// ShiftLeft shifts z left by s bits in place.
//
// The result is exactly z * 2^s. When that value needs a bit at position
// CapacityBits or above, ShiftLeft returns an *OverflowError and z is left
// unchanged. Shifting zero, or shifting by zero bits, always succeeds without
// touching z. A nil z yields ErrNilArgument.
func ShiftLeft(z *Nat, s uint) error {
	if z == nil {
		return ErrNilArgument
	}
	n, err := shlWords(z.words[:], z.len, s)
	if err != nil {
		return err
	}
	z.len = n
	return nil
}

// ShiftLeft shifts z left by s bits in place. See the package-level
// ShiftLeft for the full contract.
func (z *Nat) ShiftLeft(s uint) error {
	return ShiftLeft(z, s)
}

// shlWords shifts the n significant words of the fixed storage z left by s
// bits and returns the new significant length. Words at index >= n must be
// zero on entry. The capacity is len(z) words; on overflow z is not written.
func shlWords(z []Word, n int, s uint) (int, error) {
	if s == 0 || n == 0 {
		return n, nil
	}

	highest := bitLen(z[:n]) - 1
	capBits := uint(len(z)) * W
	// s is checked on its own first so that highest+s cannot wrap.
	if s >= capBits || uint(highest)+s >= capBits {
		return n, &OverflowError{HighestBit: highest, Shift: s, CapacityBits: int(capBits)}
	}

	ws := int(s / W)
	bs := s % W

	if ws > 0 {
		// copy has memmove semantics, so the overlapping move is safe.
		copy(z[ws:ws+n], z[:n])
		clear(z[:ws])
	}

	if bs > 0 {
		// The overflow check guarantees the carry lands inside z whenever
		// it is non-zero.
		if c := shlVU(z[ws:ws+n], z[ws:ws+n], bs); c != 0 {
			z[ws+n] = c
		}
	}

	return normLen(z), nil
}

package bignum

import (
	"encoding/binary"
	"errors"
	"math/big"
	"testing"
)

// natFromBytes interprets up to CapacityWords*8 bytes as little-endian words.
func natFromBytes(data []byte) Nat {
	var words [CapacityWords]Word
	for i := range words {
		if len(data) < 8 {
			var tail [8]byte
			copy(tail[:], data)
			words[i] = binary.LittleEndian.Uint64(tail[:])
			break
		}
		words[i] = binary.LittleEndian.Uint64(data[:8])
		data = data[8:]
	}
	z, _ := FromWords(words[:]...)
	return z
}

// FuzzShiftLeft checks ShiftLeft against math/big for arbitrary inputs.
func FuzzShiftLeft(f *testing.F) {
	f.Add([]byte{1}, uint(127))
	f.Add([]byte{1}, uint(CapacityBits))
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, uint(1))
	f.Add([]byte{}, uint(1<<40))

	f.Fuzz(func(t *testing.T, data []byte, s uint) {
		x := natFromBytes(data)
		z := x
		err := ShiftLeft(&z, s)

		if x.IsZero() {
			if err != nil || !z.IsZero() {
				t.Fatalf("shifting zero by %d: err=%v value=%x", s, err, z.Words())
			}
			return
		}
		if s >= CapacityBits || uint(x.BitLen())+s > CapacityBits {
			if !errors.Is(err, ErrOverflow) {
				t.Fatalf("ShiftLeft(%x, %d) = %v, want ErrOverflow", x.Words(), s, err)
			}
			if z != x {
				t.Fatalf("ShiftLeft(%x, %d) mutated value on overflow", x.Words(), s)
			}
			return
		}
		if err != nil {
			t.Fatalf("ShiftLeft(%x, %d) error: %v", x.Words(), s, err)
		}
		want := new(big.Int).Lsh(x.Big(), s)
		if z.Big().Cmp(want) != 0 {
			t.Fatalf("ShiftLeft(%x, %d) = %x, want %x", x.Words(), s, z.Big(), want)
		}
		if !z.Valid() {
			t.Fatalf("ShiftLeft(%x, %d) left an invalid value %+v", x.Words(), s, z)
		}
	})
}

package bignum

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Word is a single digit of a Nat.
type Word = uint64

const (
	// W is the bit width of a Word.
	W = 64
	// CapacityWords is the fixed number of words backing every Nat.
	CapacityWords = 8
	// CapacityBits is the total number of bits a Nat can represent.
	CapacityBits = CapacityWords * W
)

// Nat is a fixed-capacity unsigned integer.
//
// The zero value is the number zero. Words at index >= Len() are always zero
// and the word at Len()-1 is non-zero whenever Len() > 0. Nat is a plain value:
// copying it copies the number.
type Nat struct {
	words [CapacityWords]Word
	len   int
}

// FromUint64 returns a Nat holding x.
func FromUint64(x uint64) Nat {
	var z Nat
	if x != 0 {
		z.words[0] = x
		z.len = 1
	}
	return z
}

// FromWords builds a Nat from little-endian words (words[0] is least
// significant). Leading zero words are ignored. It fails with a
// *CapacityError if more than CapacityWords words are significant.
func FromWords(words ...Word) (Nat, error) {
	n := normLen(words)
	if n > CapacityWords {
		return Nat{}, &CapacityError{BitLen: bitLen(words[:n])}
	}
	var z Nat
	copy(z.words[:], words[:n])
	z.len = n
	return z, nil
}

// FromBig converts a non-negative big.Int to a Nat. It fails with a
// *CapacityError if x needs more than CapacityBits bits and with
// ErrNegative if x < 0.
func FromBig(x *big.Int) (Nat, error) {
	if x == nil {
		return Nat{}, ErrNilArgument
	}
	if x.Sign() < 0 {
		return Nat{}, ErrNegative
	}
	if x.BitLen() > CapacityBits {
		return Nat{}, &CapacityError{BitLen: x.BitLen()}
	}
	var buf [CapacityBits / 8]byte
	x.FillBytes(buf[:])
	var z Nat
	for i := range z.words {
		off := len(buf) - (i+1)*8
		z.words[i] = binary.BigEndian.Uint64(buf[off : off+8])
	}
	z.len = normLen(z.words[:])
	return z, nil
}

// Len returns the number of significant words.
func (z *Nat) Len() int { return z.len }

// IsZero reports whether z is zero.
func (z *Nat) IsZero() bool { return z.len == 0 }

// Word returns the word at index i, or 0 when i is outside the storage.
func (z *Nat) Word(i int) Word {
	if i < 0 || i >= CapacityWords {
		return 0
	}
	return z.words[i]
}

// Words returns a copy of the significant words, least significant first.
func (z *Nat) Words() []Word {
	out := make([]Word, z.len)
	copy(out, z.words[:z.len])
	return out
}

// BitLen returns the length of z in bits. The highest set bit of a non-zero
// value is at position BitLen()-1.
func (z *Nat) BitLen() int {
	return bitLen(z.words[:z.len])
}

// Big returns z as a newly allocated big.Int.
func (z *Nat) Big() *big.Int {
	buf := make([]byte, z.len*8)
	for i, w := range z.words[:z.len] {
		off := len(buf) - (i+1)*8
		binary.BigEndian.PutUint64(buf[off:off+8], w)
	}
	return new(big.Int).SetBytes(buf)
}

// Equal reports whether z and x hold the same value.
func (z *Nat) Equal(x *Nat) bool {
	return z.len == x.len && z.words == x.words
}

// Valid reports whether the representation invariants hold: len is within
// capacity, the top significant word is non-zero and every word above it is
// zero.
func (z *Nat) Valid() bool {
	if z.len < 0 || z.len > CapacityWords {
		return false
	}
	if z.len > 0 && z.words[z.len-1] == 0 {
		return false
	}
	for _, w := range z.words[z.len:] {
		if w != 0 {
			return false
		}
	}
	return true
}

// normLen returns the index one past the highest non-zero word of x.
func normLen(x []Word) int {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return n
}

// bitLen returns the bit length of the normalized word vector x.
func bitLen(x []Word) int {
	if n := len(x); n > 0 {
		return (n-1)*W + bits.Len64(x[n-1])
	}
	return 0
}

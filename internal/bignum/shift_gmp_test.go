//go:build gmp

package bignum

import (
	"math/rand"
	"testing"

	"github.com/ncw/gmp"
)

// TestShiftLeft_GMPOracle cross-checks ShiftLeft against GMP's mpz_mul_2exp.
// Run with: go test -tags gmp ./internal/bignum
func TestShiftLeft_GMPOracle(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		n := 1 + r.Intn(CapacityWords)
		words := make([]Word, n)
		for j := range words {
			words[j] = Word(r.Uint64())
		}
		x := mustWords(t, words...)
		s := uint(r.Intn(CapacityBits))

		oracle := new(gmp.Int)
		oracle.SetString(x.Big().Text(16), 16)
		oracle.Lsh(oracle, s)

		z := x
		err := ShiftLeft(&z, s)
		if oracle.BitLen() > CapacityBits {
			if err == nil {
				t.Fatalf("ShiftLeft(%x, %d) succeeded, GMP result has %d bits", words, s, oracle.BitLen())
			}
			continue
		}
		if err != nil {
			t.Fatalf("ShiftLeft(%x, %d) error: %v", words, s, err)
		}
		if got := z.Big().String(); got != oracle.String() {
			t.Fatalf("ShiftLeft(%x, %d) = %s, GMP = %s", words, s, got, oracle.String())
		}
	}
}

package bignum_test

import (
	"errors"
	"fmt"

	"github.com/agbru/bigshift/internal/bignum"
)

func ExampleShiftLeft() {
	z := bignum.FromUint64(1)
	if err := bignum.ShiftLeft(&z, 70); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(z.Len(), z.BitLen())
	fmt.Printf("%#x\n", z.Big())
	// Output:
	// 2 71
	// 0x400000000000000000
}

func ExampleShiftLeft_overflow() {
	z := bignum.FromUint64(1)
	err := bignum.ShiftLeft(&z, bignum.CapacityBits)
	fmt.Println(errors.Is(err, bignum.ErrOverflow))
	status, _ := bignum.StatusOf(err)
	fmt.Println(status, int(status))
	fmt.Println(z.Big())
	// Output:
	// true
	// overflow -2
	// 1
}

package bignum

// shlVU sets z = x << s for 0 < s < W and returns the bits shifted out of
// the top word. z and x may be the same slice: words are written from the
// most significant end so every source word is read before it is replaced.
func shlVU(z, x []Word, s uint) (c Word) {
	n := len(z)
	if n == 0 {
		return 0
	}
	ŝ := W - s
	c = x[n-1] >> ŝ
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

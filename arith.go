package wideint

import "math/bits"

// mul128to256 returns the full 256-bit product of n and by as two 128-bit
// halves. U256 uses the high half as the carry out of its low limb product.
func mul128to256(n, by U128) (hi, lo U128) {
	hi.hi, hi.lo = bits.Mul64(n.hi, by.hi)
	lo.hi, lo.lo = bits.Mul64(n.lo, by.lo)

	var t U128
	var c uint64

	t.hi, t.lo = bits.Mul64(n.hi, by.lo)
	lo.hi, c = bits.Add64(lo.hi, t.lo, 0)
	hi, _ = hi.AddCarry(U128{lo: t.hi}, c)

	t.hi, t.lo = bits.Mul64(n.lo, by.hi)
	lo.hi, c = bits.Add64(lo.hi, t.lo, 0)
	hi, _ = hi.AddCarry(U128{lo: t.hi}, c)

	return hi, lo
}

package wideint

import (
	"fmt"
	"math/big"
)

// U256 is an unsigned 256-bit integer made of two U128 limbs. All arithmetic
// wraps modulo 2^256 and is built on U128's own arithmetic and comparisons.
type U256 struct {
	hi, lo U128
}

func U256FromRaw(hi, lo U128) U256 { return U256{hi: hi, lo: lo} }
func U256From128(in U128) U256     { return U256{lo: in} }
func U256From64(in uint64) U256    { return U256{lo: U128{lo: in}} }

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets inRange to 'false'.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 256 {
		return MaxU256, false
	}

	var lo big.Int
	lo.And(v, maxBigU128)
	out.lo, _ = U128FromBigInt(&lo)

	var hi big.Int
	hi.Rsh(v, 128)
	out.hi, _ = U128FromBigInt(&hi)
	return out, true
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: RandU128(source), lo: RandU128(source)}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns the two 128-bit limbs of u. See U256FromRaw() for the
// counterpart.
func (u U256) Raw() (hi, lo U128) { return u.hi, u.lo }

func (u U256) AsU128() U128 { return u.lo }

func (u U256) IsU128() bool { return u.hi.IsZero() }

func (u U256) AsUint64() uint64 { return u.lo.lo }

func (u U256) IsUint64() bool { return u.hi.IsZero() && u.lo.hi == 0 }

func (u U256) IntoBigInt(b *big.Int) {
	u.hi.IntoBigInt(b)
	b.Lsh(b, 128)
	var lo big.Int
	u.lo.IntoBigInt(&lo)
	b.Or(b, &lo)
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) String() string {
	if u.hi.IsZero() {
		return u.lo.String()
	}
	return u.AsBigInt().String()
}

func (u U256) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// BitString renders all 256 bits of u, most significant limb first.
func (u U256) BitString() string {
	return u.hi.BitString() + u.lo.BitString()
}

func (u U256) Inc() (v U256) {
	v.lo = u.lo.Inc()
	v.hi = u.hi
	if v.lo.IsZero() {
		v.hi = v.hi.Inc()
	}
	return v
}

func (u U256) Dec() (v U256) {
	v.lo = u.lo.Dec()
	v.hi = u.hi
	if u.lo.IsZero() {
		v.hi = v.hi.Dec()
	}
	return v
}

// Add returns u+n, wrapping at 2^256. The low limbs are added with U128
// arithmetic; if that sum wrapped past 2^128 it is smaller than either
// operand, and exactly 1 is carried into the high limb.
func (u U256) Add(n U256) (v U256) {
	v.lo = u.lo.Add(n.lo)
	v.hi = u.hi.Add(n.hi)
	if v.lo.LessThan(u.lo) {
		v.hi = v.hi.Inc()
	}
	return v
}

// Sub returns u-n, wrapping at 2^256. A borrow of 1 is taken from the high
// limb when n.lo > u.lo.
func (u U256) Sub(n U256) (v U256) {
	v.lo = u.lo.Sub(n.lo)
	v.hi = u.hi.Sub(n.hi)
	if n.lo.GreaterThan(u.lo) {
		v.hi = v.hi.Dec()
	}
	return v
}

// Mul returns u*n, wrapping at 2^256. The carry into the high limb is the
// upper half of the full u.lo*n.lo product; the cross terms are added on
// top modulo 2^128 and u.hi*n.hi is discarded.
func (u U256) Mul(n U256) (dest U256) {
	carry, lo := mul128to256(u.lo, n.lo)
	dest.lo = lo
	dest.hi = carry.Add(u.hi.Mul(n.lo)).Add(u.lo.Mul(n.hi))
	return dest
}

func (u *U256) AddAssign(n U256) { *u = u.Add(n) }
func (u *U256) SubAssign(n U256) { *u = u.Sub(n) }
func (u *U256) MulAssign(n U256) { *u = u.Mul(n) }
func (u *U256) XorAssign(n U256) { *u = u.Xor(n) }

func (u U256) Cmp(n U256) int {
	if c := u.hi.Cmp(n.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(n.lo)
}

func (u U256) Equal(n U256) bool {
	return u.hi.Equal(n.hi) && u.lo.Equal(n.lo)
}

func (u U256) GreaterThan(n U256) bool {
	return u.hi.GreaterThan(n.hi) || (u.hi.Equal(n.hi) && u.lo.GreaterThan(n.lo))
}

func (u U256) GreaterOrEqualTo(n U256) bool {
	return u.hi.GreaterThan(n.hi) || (u.hi.Equal(n.hi) && u.lo.GreaterOrEqualTo(n.lo))
}

func (u U256) LessThan(n U256) bool {
	return u.hi.LessThan(n.hi) || (u.hi.Equal(n.hi) && u.lo.LessThan(n.lo))
}

func (u U256) LessOrEqualTo(n U256) bool {
	return u.hi.LessThan(n.hi) || (u.hi.Equal(n.hi) && u.lo.LessOrEqualTo(n.lo))
}

func (u U256) And(n U256) U256 {
	u.hi = u.hi.And(n.hi)
	u.lo = u.lo.And(n.lo)
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi = u.hi.AndNot(n.hi)
	u.lo = u.lo.AndNot(n.lo)
	return u
}

func (u U256) Not() U256 {
	u.hi = u.hi.Not()
	u.lo = u.lo.Not()
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi.Or(n.hi)
	u.lo = u.lo.Or(n.lo)
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi.Xor(n.hi)
	u.lo = u.lo.Xor(n.lo)
	return u
}

// Lsh returns u<<n. Shifts of 256 or more produce 0.
func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u
	} else if n >= 256 {
		return v
	} else if n > 128 {
		v.hi = u.lo.Lsh(n - 128)
	} else if n < 128 {
		v.hi = u.hi.Lsh(n).Or(u.lo.Rsh(128 - n))
		v.lo = u.lo.Lsh(n)
	} else { // n == 128
		v.hi = u.lo
	}
	return v
}

// Rsh returns u>>n. Shifts of 256 or more produce 0.
func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u
	} else if n >= 256 {
		return v
	} else if n > 128 {
		v.lo = u.hi.Rsh(n - 128)
	} else if n < 128 {
		v.lo = u.lo.Rsh(n).Or(u.hi.Lsh(128 - n))
		v.hi = u.hi.Rsh(n)
	} else { // n == 128
		v.lo = u.hi
	}
	return v
}

func (u U256) LeadingZeros() uint {
	if u.hi.IsZero() {
		return u.lo.LeadingZeros() + 128
	}
	return u.hi.LeadingZeros()
}

func (u U256) TrailingZeros() uint {
	if u.lo.IsZero() {
		return u.hi.TrailingZeros() + 128
	}
	return u.lo.TrailingZeros()
}

func (u U256) BitLen() int {
	return 256 - int(u.LeadingZeros())
}

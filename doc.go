/*
Package wideint provides fixed-width unsigned 128-bit (U128) and 256-bit (U256)
integer types.

U128 is built from two uint64 limbs and U256 from two U128 limbs. Both are
value types; all operations return new values, except the *Assign methods
which update the receiver in place.

Arithmetic behaves like Go's native unsigned integers: Add, Sub and Mul wrap
around modulo 2^128 or 2^256 and never panic or return an error.

	u1 := U128FromRaw(0, math.MaxUint64)
	u2 := U128From64(1)
	fmt.Println(u1.Add(u2))
	// Output: 18446744073709551616

	w := U256From128(MaxU128)
	w.AddAssign(U256From64(1))
	fmt.Println(w.Raw())
	// Output: 1 0

U128 and U256 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	U256FromRaw(hi, lo U128) U256
	U256From128(v U128) U256
	U256From64(v uint64) U256
	U256FromBigInt(v *big.Int) (out U256, inRange bool)

Division, signed values and parsing are not supported.
*/
package wideint

package wideint

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxU256 = U256{hi: MaxU128, lo: MaxU128}

	zeroU128 U128
	zeroU256 U256

	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	maxBigU256, _ = new(big.Int).SetString("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", 0)

	// wrapBigU128 is 1 << 128, used to simulate over/underflow:
	wrapBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)

	// wrapBigU256 is 1 << 256:
	wrapBigU256 = new(big.Int).Lsh(big1, 256)
)

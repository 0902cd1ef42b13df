// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "math/big"

// pow10Cache memoizes small powers of ten. Like freeList, it is process-wide
// and unsynchronized.
var pow10Cache = map[uint32]*big.Int{}

// pow10 returns 10^e as a shared, never-mutated *big.Int.
func pow10(e uint32) *big.Int {
	if v, ok := pow10Cache[e]; ok {
		return v
	}
	v := new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(uint64(e)), nil)
	pow10Cache[e] = v
	return v
}

// mulPow10 returns a fresh *big.Int equal to x * 10^e.
func mulPow10(x *big.Int, e uint32) *big.Int {
	if e == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Mul(x, pow10(e))
}

// tdivPow10 returns a fresh *big.Int equal to x / 10^e, truncated toward
// zero. mulPow10 and tdivPow10 are the only two rescale primitives every
// kernel in this package builds on.
func tdivPow10(x *big.Int, e uint32) *big.Int {
	if e == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Quo(x, pow10(e))
}

// rescale returns x's significand realigned to scale s, where s >= x.scale.
func rescale(x *Number, s uint32) *big.Int {
	if s == x.scale {
		return new(big.Int).Set(x.value)
	}
	return mulPow10(x.value, s-x.scale)
}

// cmpAbs compares |x| and |y|, returning a value in {-1, 0, 1}. math/big.Int
// has no CmpAbs method, so this is the one place the magnitude comparison
// used by CompareAbs lives.
func cmpAbs(x, y *big.Int) int {
	return new(big.Int).Abs(x).Cmp(new(big.Int).Abs(y))
}

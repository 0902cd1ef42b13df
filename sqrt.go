// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "math/big"

// Sqrt replaces the handle in slot with its square root at scale
// max(scale, x.scale), computed from big.Int's integer square root after
// rescaling to 2*rscale digits of precision. It reports false and leaves
// slot untouched if the current value is negative; otherwise it reports
// true.
//
// The result may differ from the mathematically exact value by up to one
// unit in the last place, since it is derived from a truncating integer
// square root rather than an exact one.
func Sqrt(slot **Number, scale uint32) bool {
	x := *slot
	switch Compare(x, Zero) {
	case -1:
		return false
	case 0:
		set(slot, Copy(Zero))
		return true
	}
	if Compare(x, One) == 0 {
		set(slot, Copy(One))
		return true
	}

	rscale := maxU32(scale, x.scale)
	k := 2*int64(rscale) - int64(x.scale)

	var n *big.Int
	switch {
	case k > 0:
		n = mulPow10(x.value, uint32(k))
	case k < 0:
		n = tdivPow10(x.value, uint32(-k))
	default:
		n = new(big.Int).Set(x.value)
	}

	r := new(big.Int).Sqrt(n)
	result := New(rscale)
	result.value.Set(r)
	set(slot, result)
	return true
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "math/big"

// Add installs a+b into out, at scale max(a.scale, b.scale, scaleMin).
func Add(a, b *Number, out **Number, scaleMin uint32) {
	sumScale := maxU32(a.scale, b.scale)
	r := addSub(a, b, false)
	if sumScale < scaleMin {
		r = mulPow10(r, scaleMin-sumScale)
		sumScale = scaleMin
	}
	n := New(sumScale)
	n.value.Set(r)
	set(out, n)
}

// Sub installs a-b into out, at scale max(a.scale, b.scale, scaleMin).
//
// When a.scale < b.scale the rescaled a must be the minuend: (a*10^d) - b,
// never b - (a*10^d). Order matters here.
func Sub(a, b *Number, out **Number, scaleMin uint32) {
	diffScale := maxU32(a.scale, b.scale)
	r := addSub(a, b, true)
	if diffScale < scaleMin {
		r = mulPow10(r, scaleMin-diffScale)
		diffScale = scaleMin
	}
	n := New(diffScale)
	n.value.Set(r)
	set(out, n)
}

// addSub aligns a and b to their common scale and returns a+b (sub == false)
// or a-b (sub == true) as a fresh *big.Int.
func addSub(a, b *Number, sub bool) *big.Int {
	switch {
	case a.scale > b.scale:
		bv := mulPow10(b.value, a.scale-b.scale)
		if sub {
			return new(big.Int).Sub(a.value, bv)
		}
		return new(big.Int).Add(a.value, bv)
	case a.scale < b.scale:
		av := mulPow10(a.value, b.scale-a.scale)
		if sub {
			return new(big.Int).Sub(av, b.value)
		}
		return new(big.Int).Add(av, b.value)
	default:
		if sub {
			return new(big.Int).Sub(a.value, b.value)
		}
		return new(big.Int).Add(a.value, b.value)
	}
}

// Mul installs a*b into out, truncated to
// min(a.scale+b.scale, max(scale, max(a.scale, b.scale))).
//
// Truncation is toward zero: the product's sign matches the sign of
// a.value*b.value. math/big.Int.Quo already implements this, so no
// separate sign fixup is needed.
func Mul(a, b *Number, out **Number, scale uint32) {
	full := a.scale + b.scale
	prodScale := minU32(full, maxU32(scale, maxU32(a.scale, b.scale)))
	p := new(big.Int).Mul(a.value, b.value)
	if full > prodScale {
		p = tdivPow10(p, full-prodScale)
	}
	n := New(prodScale)
	n.value.Set(p)
	set(out, n)
}

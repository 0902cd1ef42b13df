// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"math/big"

	"github.com/pkg/errors"
)

// Divide installs a/b, truncated toward zero at scale, into out. It returns
// ErrDivideByZero (wrapped with call-site context) and leaves out untouched
// if b is zero.
func Divide(a, b *Number, out **Number, scale uint32) error {
	if IsZero(b) {
		return errors.Wrapf(ErrDivideByZero, "divide %s by %s", ToString(a), ToString(b))
	}
	q := divide(a, b, scale)
	n := New(scale)
	n.value.Set(q)
	set(out, n)
	return nil
}

// divide computes a/b truncated toward zero at scale, as a fresh *big.Int.
func divide(a, b *Number, scale uint32) *big.Int {
	k := int64(b.scale) + int64(scale) - int64(a.scale)
	var num *big.Int
	switch {
	case k > 0:
		num = mulPow10(a.value, uint32(k))
	case k < 0:
		num = tdivPow10(a.value, uint32(-k))
	default:
		num = new(big.Int).Set(a.value)
	}
	return new(big.Int).Quo(num, b.value)
}

// DivMod computes a/b (installed into qOut if non-nil) and a%b (installed
// into rOut) at scale, satisfying the division-with-remainder identity
// add(mul(q, b), r) == a truncated to r's scale. qOut may be nil to compute
// only the remainder; Modulo is DivMod with qOut == nil.
func DivMod(a, b *Number, qOut, rOut **Number, scale uint32) error {
	if IsZero(b) {
		return errors.Wrapf(ErrDivideByZero, "divmod %s by %s", ToString(a), ToString(b))
	}

	rscale := maxU32(a.scale, b.scale+scale)

	q := divide(a, b, scale)
	if qOut != nil {
		qn := New(scale)
		qn.value.Set(q)
		set(qOut, qn)
	}

	// t = q*b has scale = scale+b.scale, which is always <= rscale, so Mul's
	// own scale cap never truncates it further here: it is exactly
	// min(scale+b.scale, max(rscale, max(scale, b.scale))) == scale+b.scale.
	tScale := scale + b.scale
	tVal := new(big.Int).Mul(q, b.value)

	var diff *big.Int
	switch {
	case a.scale >= tScale:
		tv := tVal
		if a.scale > tScale {
			tv = mulPow10(tVal, a.scale-tScale)
		}
		diff = new(big.Int).Sub(a.value, tv)
	default:
		av := mulPow10(a.value, tScale-a.scale)
		diff = new(big.Int).Sub(av, tVal)
	}

	rn := New(rscale)
	rn.value.Set(diff)
	set(rOut, rn)
	return nil
}

// Modulo computes a%b at scale into out. The remainder has the same sign as
// a, since Divide truncates toward zero.
func Modulo(a, b *Number, out **Number, scale uint32) error {
	return DivMod(a, b, nil, out, scale)
}

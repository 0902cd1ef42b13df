// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// Raise installs base^expo into out at scale. Only the integer part of expo
// is used; a nonzero fractional scale is reported through Diag.Warn and
// truncated. If the truncated exponent does not fit an int64, or is
// math.MinInt64 (which cannot be negated), Raise reports ErrExponentTooLarge
// through Diag.Error and leaves out untouched.
func Raise(base, expo *Number, out **Number, scale uint32) {
	if expo.scale != 0 {
		Diag.Warn("non-zero scale in exponent")
	}
	eInt := tdivPow10(expo.value, expo.scale)
	if !eInt.IsInt64() || eInt.Int64() == math.MinInt64 {
		Diag.Error(errors.Wrapf(ErrExponentTooLarge, "exponent=%s", eInt.String()).Error())
		return
	}
	e := eInt.Int64()

	if e == 0 {
		set(out, Copy(One))
		return
	}

	neg := e < 0
	if neg {
		e = -e
	}

	var rscale uint32
	if neg {
		rscale = scale
	} else {
		full := uint64(base.scale) * uint64(e)
		cap64 := uint64(maxU32(scale, base.scale))
		if full > cap64 {
			full = cap64
		}
		rscale = uint32(full)
	}

	p := new(big.Int).Exp(base.value, big.NewInt(e), nil)
	diffscale := int64(base.scale)*e - int64(rscale)
	switch {
	case diffscale > 0:
		p = tdivPow10(p, uint32(diffscale))
	case diffscale < 0:
		p = mulPow10(p, uint32(-diffscale))
	}

	if neg {
		tmp := New(rscale)
		tmp.value.Set(p)
		// Mirrors bc_raise, which does not check bc_divide's return here:
		// a zero positive-exponent result silently leaves out untouched.
		_ = Divide(One, tmp, out, scale)
		Release(&tmp)
		return
	}

	n := New(rscale)
	n.value.Set(p)
	set(out, n)
}

// RaiseMod installs base^expo mod mod into out at scale, using repeated
// squaring built from this package's own Mul and Modulo. It
// returns ErrDivideByZero if mod is zero and ErrNegativeExponent if expo is
// negative; out is left untouched in both cases.
func RaiseMod(base, expo, mod *Number, out **Number, scale uint32) error {
	if IsZero(mod) {
		return errors.Wrapf(ErrDivideByZero, "raisemod modulus=%s", ToString(mod))
	}
	if IsNeg(expo) {
		return errors.Wrapf(ErrNegativeExponent, "raisemod exponent=%s", ToString(expo))
	}

	power := Copy(base)
	exponent := Copy(expo)
	acc := Copy(One)
	defer Release(&power)
	defer Release(&exponent)

	if base.scale != 0 {
		Diag.Warn("non-zero scale in base")
	}
	if exponent.scale != 0 {
		Diag.Warn("non-zero scale in exponent")
		var truncated *Number
		_ = Divide(exponent, One, &truncated, 0)
		set(&exponent, truncated)
	}
	if mod.scale != 0 {
		Diag.Warn("non-zero scale in modulus")
	}

	rscale := maxU32(scale, base.scale)

	for !IsZero(exponent) {
		var nextExp, parity *Number
		_ = DivMod(exponent, Two, &nextExp, &parity, 0)
		set(&exponent, nextExp)

		if !IsZero(parity) {
			var product *Number
			Mul(acc, power, &product, rscale)
			set(&acc, product)
			var reduced *Number
			_ = Modulo(acc, mod, &reduced, scale)
			set(&acc, reduced)
		}
		Release(&parity)

		var squared *Number
		Mul(power, power, &squared, rscale)
		set(&power, squared)
		var reducedPower *Number
		_ = Modulo(power, mod, &reducedPower, scale)
		set(&power, reducedPower)
	}

	set(out, acc)
	return nil
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "fmt"

// Sink receives the characters produced by OutNum and OutLong, one
// fragment at a time, so callers can stream output without building an
// intermediate string.
type Sink func(s string)

const hexDigits = "0123456789ABCDEF"

// OutLong writes v zero-padded to at least width decimal columns, preceded
// by a single space if leadingSpace is set.
func OutLong(sink Sink, v int64, width int, leadingSpace bool) {
	if leadingSpace {
		sink(" ")
	}
	s := fmt.Sprintf("%d", v)
	for len(s) < width {
		s = "0" + s
	}
	sink(s)
}

// OutNum streams h formatted in base obase to sink, following POSIX bc's
// output rules. obase == 10 is special-cased to reuse ToString.
//
// For obase > 16, digits are emitted as zero-padded decimal fields of width
// w (enough to print obase-1), with a space before every integer digit
// including the first, but only from the second fractional digit onward.
// This asymmetry is reproduced bit for bit rather than regularized.
func OutNum(h *Number, obase int, sink Sink, leadingZero bool) {
	_ = leadingZero // unreachable in the reference implementation once h == 0 is handled below; kept for API parity.

	if IsNeg(h) {
		sink("-")
	}
	if IsZero(h) {
		sink("0")
		return
	}
	if obase == 10 {
		s := ToString(h)
		if s[0] == '-' {
			s = s[1:]
		}
		sink(s)
		return
	}

	var intPart, fracPart *Number
	Divide(h, One, &intPart, 0)
	Sub(h, intPart, &fracPart, 0)
	defer Release(&intPart)
	defer Release(&fracPart)
	intPart.value.Abs(intPart.value)
	fracPart.value.Abs(fracPart.value)

	base := New(0)
	base.value.SetInt64(int64(obase))
	defer Release(&base)

	maxDigit := New(0)
	maxDigit.value.SetInt64(int64(obase - 1))
	w := Length(maxDigit)
	Release(&maxDigit)

	var digitsStack []int64
	for !IsZero(intPart) {
		var curDig *Number
		Modulo(intPart, base, &curDig, 0)
		digitsStack = append(digitsStack, ToInt(curDig))
		Release(&curDig)
		var q *Number
		Divide(intPart, base, &q, 0)
		set(&intPart, q)
	}
	for i := len(digitsStack) - 1; i >= 0; i-- {
		d := digitsStack[i]
		if obase <= 16 {
			sink(string(hexDigits[d]))
		} else {
			OutLong(sink, d, w, true)
		}
	}

	if h.scale == 0 {
		return
	}

	sink(".")
	preSpace := false
	t := Copy(One)
	defer Release(&t)
	for Length(t) <= int(h.scale) {
		var product *Number
		Mul(fracPart, base, &product, h.scale)
		set(&fracPart, product)

		fdigit := ToInt(fracPart)
		var intDig *Number
		FromInt(&intDig, fdigit)
		var remainder *Number
		Sub(fracPart, intDig, &remainder, 0)
		Release(&intDig)
		set(&fracPart, remainder)

		if obase <= 16 {
			sink(string(hexDigits[fdigit]))
		} else {
			OutLong(sink, fdigit, w, preSpace)
			preSpace = true
		}

		var tNext *Number
		Mul(t, base, &tNext, 0)
		set(&t, tNext)
	}
}

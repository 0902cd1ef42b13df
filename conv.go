// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"math"
	"math/big"
	"strings"
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// FromString parses text into slot at the given scale: an optional sign,
// digits, an optional '.', digits. Either side of the point may be empty
// but not both. Any trailing non-digit character, or a string with digits
// on neither side of the point, installs Zero with no error — parse
// failure in FromString is always silent. Fractional digits beyond scale
// are discarded.
func FromString(slot **Number, text string, scale uint32) {
	i := 0
	neg := false
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		neg = text[i] == '-'
		i++
	}

	start := i
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	intPart := text[start:i]

	var fracPart string
	if i < len(text) && text[i] == '.' {
		i++
		start = i
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		fracPart = text[start:i]
	}

	if i != len(text) || (len(intPart) == 0 && len(fracPart) == 0) {
		set(slot, Copy(Zero))
		return
	}

	intPart = strings.TrimLeft(intPart, "0")

	strscale := uint32(len(fracPart))
	if strscale > scale {
		fracPart = fracPart[:scale]
		strscale = scale
	}

	digitsStr := intPart + fracPart
	if digitsStr == "" {
		digitsStr = "0"
	}

	v := new(big.Int)
	v.SetString(digitsStr, 10)
	if neg {
		v.Neg(v)
	}

	n := New(strscale)
	n.value.Set(v)
	set(slot, n)
}

// ToString formats h in base 10. Let d be the digit count of |h|'s
// significand (1 for zero). If d >= scale, the first d-scale digits are
// emitted, then (if scale > 0) a point and the remaining scale digits;
// otherwise a point is emitted, then scale-d zeros, then the d digits. This
// rule produces the familiar ".333"-style output for a zero integer part,
// without a leading "0" before the point.
func ToString(h *Number) string {
	digits := new(big.Int).Abs(h.value).Text(10)
	d := len(digits)
	scale := int(h.scale)

	var sb strings.Builder
	if IsNeg(h) {
		sb.WriteByte('-')
	}
	switch {
	case d >= scale:
		sb.WriteString(digits[:d-scale])
		if scale > 0 {
			sb.WriteByte('.')
			sb.WriteString(digits[d-scale:])
		}
	default:
		sb.WriteByte('.')
		sb.WriteString(strings.Repeat("0", scale-d))
		sb.WriteString(digits)
	}
	return sb.String()
}

// FromInt installs the integer value v at scale 0 into slot.
func FromInt(slot **Number, v int64) {
	n := New(0)
	n.value.SetInt64(v)
	set(slot, n)
}

// ToInt truncates h to its integer part and returns it as an int64. On
// overflow (including math.MinInt64, which Negate could not safely handle)
// it returns 0; callers distinguish a genuine zero from overflow by
// checking IsZero on the input.
func ToInt(h *Number) int64 {
	v := h.value
	if h.scale > 0 {
		v = tdivPow10(h.value, h.scale)
	}
	if !v.IsInt64() {
		return 0
	}
	r := v.Int64()
	if r == math.MinInt64 {
		return 0
	}
	return r
}

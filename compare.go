// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Compare returns -1, 0 or +1 according to whether a < b, a == b or a > b,
// using signed comparison. The operand with the smaller scale is the one
// rescaled up, so no information is ever lost.
func Compare(a, b *Number) int {
	return compare(a, b, true)
}

// CompareAbs is Compare but ignores sign, comparing |a| and |b|.
func CompareAbs(a, b *Number) int {
	return compare(a, b, false)
}

func compare(a, b *Number, useSign bool) int {
	var result int
	switch {
	case a.scale > b.scale:
		bv := rescale(b, a.scale)
		if useSign {
			result = a.value.Cmp(bv)
		} else {
			result = cmpAbs(a.value, bv)
		}
	case a.scale < b.scale:
		av := rescale(a, b.scale)
		if useSign {
			result = av.Cmp(b.value)
		} else {
			result = cmpAbs(av, b.value)
		}
	default:
		if useSign {
			result = a.value.Cmp(b.value)
		} else {
			result = cmpAbs(a.value, b.value)
		}
	}
	switch {
	case result < 0:
		return -1
	case result > 0:
		return 1
	default:
		return 0
	}
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "math/big"

// Number is a shared-ownership handle for a decimal fixed-point value of the
// form value * 10^(-scale). The zero value of Number is never used directly;
// handles are always obtained from New, Copy or one of the conversion
// functions.
type Number struct {
	value *big.Int
	scale uint32
	refs  uint32
	next  *Number // free-list link, valid only while refs == 0
}

// freeList is the process-wide recycle pool that New and Release draw from
// and return to. It is not synchronized: this package assumes a single
// cooperative caller and leaves locking to embedders that share it across
// threads.
var freeList *Number

// Zero, One and Two are the package singletons. They are created once by
// InitNumbers and are never released; callers obtain their own share with
// Copy rather than holding these pointers directly.
var (
	Zero *Number
	One  *Number
	Two  *Number
)

func init() {
	InitNumbers()
}

// InitNumbers (re)creates the Zero, One and Two singletons. It runs
// automatically via init and only needs to be called again by tests that
// want to exercise a pristine set of singletons.
func InitNumbers() {
	Zero = singleton(0)
	One = singleton(1)
	Two = singleton(2)
}

func singleton(v int64) *Number {
	n := &Number{value: big.NewInt(v), refs: 1}
	return n
}

// New allocates a handle of value 0 at the given scale, reclaiming an entry
// from the free list when one is available.
func New(scale uint32) *Number {
	if freeList != nil {
		n := freeList
		freeList = n.next
		n.next = nil
		n.scale = scale
		n.refs = 1
		n.value.SetInt64(0)
		return n
	}
	return &Number{value: new(big.Int), scale: scale, refs: 1}
}

// Copy returns n with its reference count incremented. The returned handle
// has the same identity as n; it is a new share, not a clone of the value.
func Copy(n *Number) *Number {
	n.refs++
	return n
}

// Release drops the share held by slot. If slot is empty, Release is a
// no-op. Otherwise the handle's reference count is decremented and, once it
// reaches zero, the handle is pushed onto the free list. slot is always left
// empty afterwards.
func Release(slot **Number) {
	n := *slot
	if n == nil {
		return
	}
	n.refs--
	if n.refs == 0 {
		n.next = freeList
		freeList = n
	}
	*slot = nil
}

// InitZero releases whatever slot currently holds and replaces it with a
// fresh share of Zero.
func InitZero(slot **Number) {
	Release(slot)
	*slot = Copy(Zero)
}

// set installs n into slot, releasing the prior occupant first. Every
// operation that produces a result through an out-parameter routes its
// installation through set so the release-before-install discipline is
// applied in exactly one place.
func set(slot **Number, n *Number) {
	Release(slot)
	*slot = n
}

// IsZero reports whether n models the rational value zero.
func IsZero(n *Number) bool { return n.value.Sign() == 0 }

// IsNeg reports whether n is strictly negative. Zero is never negative,
// regardless of scale.
func IsNeg(n *Number) bool { return n.value.Sign() < 0 }

// ScaleOf returns n's scale.
func ScaleOf(n *Number) uint32 { return n.scale }

// Length returns the number of decimal digits in |n|'s significand. Zero has
// length 1.
func Length(n *Number) int {
	return len(new(big.Int).Abs(n.value).Text(10))
}

// Negate flips the sign of the handle held in slot. If the handle is
// uniquely held (refs == 1) it is mutated in place; otherwise a fresh handle
// with the negated value is allocated and installed, leaving any other
// holder of the original handle unaffected.
func Negate(slot **Number) {
	n := *slot
	if n.refs == 1 {
		n.value.Neg(n.value)
		return
	}
	fresh := New(n.scale)
	fresh.value.Neg(n.value)
	set(slot, fresh)
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndRelease(t *testing.T) {
	n := New(3)
	require.True(t, IsZero(n))
	require.EqualValues(t, 3, ScaleOf(n))

	var slot *Number = n
	Release(&slot)
	assert.Nil(t, slot)
}

func TestCopyIncrementsRefs(t *testing.T) {
	n := New(0)
	n.value.SetInt64(42)
	require.EqualValues(t, 1, n.refs)

	shared := Copy(n)
	assert.Same(t, n, shared)
	assert.EqualValues(t, 2, n.refs)

	var slot *Number = shared
	Release(&slot)
	assert.EqualValues(t, 1, n.refs)

	slot = n
	Release(&slot)
	assert.EqualValues(t, 0, n.refs)
}

func TestReleaseRecyclesFromFreeList(t *testing.T) {
	savedFreeList := freeList
	freeList = nil
	defer func() { freeList = savedFreeList }()

	n := New(5)
	n.value.SetInt64(9)
	var slot *Number = n
	Release(&slot)

	require.NotNil(t, freeList)
	reused := New(2)
	assert.Same(t, n, reused)
	assert.EqualValues(t, 2, ScaleOf(reused))
	assert.True(t, IsZero(reused))
}

func TestReleaseOnEmptySlotIsNoop(t *testing.T) {
	var slot *Number
	assert.NotPanics(t, func() { Release(&slot) })
}

func TestInitZeroShareIdentity(t *testing.T) {
	InitNumbers()
	var slot *Number
	InitZero(&slot)
	assert.Same(t, Zero, slot)
	assert.EqualValues(t, 2, Zero.refs)
	Release(&slot)
	assert.EqualValues(t, 1, Zero.refs)
}

func TestIsZeroIsNeg(t *testing.T) {
	var slot *Number
	FromString(&slot, "-3.5", 2)
	assert.False(t, IsZero(slot))
	assert.True(t, IsNeg(slot))

	var zeroSlot *Number
	FromString(&zeroSlot, "0.00", 2)
	assert.True(t, IsZero(zeroSlot))
	assert.False(t, IsNeg(zeroSlot))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 1, Length(Zero))

	var n *Number
	FromString(&n, "-12345", 0)
	assert.Equal(t, 5, Length(n))
}

func TestNegateUniqueHandleMutatesInPlace(t *testing.T) {
	var slot *Number
	FromInt(&slot, 5)
	orig := slot
	Negate(&slot)
	assert.Same(t, orig, slot)
	assert.Equal(t, int64(-5), ToInt(slot))
}

func TestNegateSharedHandleAllocatesFresh(t *testing.T) {
	var slot *Number
	FromInt(&slot, 5)
	shared := Copy(slot)
	defer func() { Release(&shared) }()

	Negate(&slot)
	assert.NotSame(t, shared, slot)
	assert.Equal(t, int64(5), ToInt(shared))
	assert.Equal(t, int64(-5), ToInt(slot))
}

func TestSingletonsHaveCorrectValues(t *testing.T) {
	assert.True(t, IsZero(Zero))
	assert.Equal(t, int64(1), ToInt(One))
	assert.Equal(t, int64(2), ToInt(Two))
}

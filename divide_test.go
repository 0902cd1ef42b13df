// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivideScenarioS2(t *testing.T) {
	a := num(t, "1", 10)
	b := num(t, "3", 10)
	var out *Number
	require.NoError(t, Divide(a, b, &out, 10))
	assert.Equal(t, ".3333333333", ToString(out))
}

func TestDivideByZero(t *testing.T) {
	a := num(t, "5", 0)
	var out *Number
	err := Divide(a, Zero, &out, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Nil(t, out)
}

func TestModuloScenarioS3(t *testing.T) {
	a := num(t, "-7", 0)
	b := num(t, "3", 0)
	var out *Number
	require.NoError(t, Modulo(a, b, &out, 0))
	assert.Equal(t, "-1", ToString(out))
}

func TestModuloSignMatchesDividend(t *testing.T) {
	a := num(t, "7", 0)
	b := num(t, "-3", 0)
	var out *Number
	require.NoError(t, Modulo(a, b, &out, 0))
	assert.False(t, IsNeg(out))
}

func TestDivModIdentity(t *testing.T) {
	a := num(t, "17.25", 2)
	b := num(t, "3.1", 1)
	const scale = 4

	var q, r *Number
	require.NoError(t, DivMod(a, b, &q, &r, scale))

	var prod, sum *Number
	rscale := maxU32(a.scale, b.scale+scale)
	Mul(q, b, &prod, rscale)
	Add(prod, r, &sum, rscale)

	var aAtR *Number
	Add(a, Zero, &aAtR, rscale)
	assert.Equal(t, ToString(aAtR), ToString(sum))
}

func TestDivModQOutOmitted(t *testing.T) {
	a := num(t, "10", 0)
	b := num(t, "3", 0)
	var r *Number
	require.NoError(t, DivMod(a, b, nil, &r, 0))
	assert.Equal(t, "1", ToString(r))
}

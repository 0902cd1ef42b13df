// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(n *Number, obase int) string {
	var sb strings.Builder
	OutNum(n, obase, func(s string) { sb.WriteString(s) }, false)
	return sb.String()
}

func TestOutNumScenarioS6(t *testing.T) {
	n := num(t, "255.5", 1)
	assert.Equal(t, "FF.8", render(n, 16))
}

func TestOutNumBase10MatchesToString(t *testing.T) {
	n := num(t, "-42.75", 2)
	assert.Equal(t, ToString(n), render(n, 10))
}

func TestOutNumZero(t *testing.T) {
	assert.Equal(t, "0", render(Zero, 16))
	assert.Equal(t, "0", render(Zero, 2))
}

func TestOutNumBinary(t *testing.T) {
	n := num(t, "5", 0)
	assert.Equal(t, "101", render(n, 2))
}

func TestOutNumBaseOver16HasAsymmetricSpacing(t *testing.T) {
	n := num(t, "300.5", 1)
	out := render(n, 20)
	// Integer section: space before every digit, including the first.
	// Fractional section: space starts from the second digit onward.
	assert.True(t, strings.HasPrefix(out, " "))
	assert.Contains(t, out, ".")
	assert.Equal(t, " 15 00.10", out)
}

func TestOutLong(t *testing.T) {
	var sb strings.Builder
	sink := func(s string) { sb.WriteString(s) }
	OutLong(sink, 7, 3, true)
	assert.Equal(t, " 007", sb.String())
}

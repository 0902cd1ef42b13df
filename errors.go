// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "github.com/pkg/errors"

// Domain error kinds surfaced by the ok-or-fail operations.
// Divide, DivMod, Modulo and RaiseMod wrap one of these with call-site
// context via errors.Wrapf; callers branch on kind with errors.Is rather
// than matching error strings.
var (
	// ErrDivideByZero is returned when the divisor (Divide, DivMod,
	// Modulo) or the modulus (RaiseMod) is zero.
	ErrDivideByZero = errors.New("bcnum: divide by zero")
	// ErrNegativeExponent is returned when RaiseMod is called with a
	// negative exponent.
	ErrNegativeExponent = errors.New("bcnum: negative exponent in raisemod")
	// ErrExponentTooLarge is reported through Diag.Error (not returned)
	// when Raise's integer exponent does not fit an int64 or is
	// math.MinInt64.
	ErrExponentTooLarge = errors.New("bcnum: exponent too large in raise")
)

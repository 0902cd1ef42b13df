// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bcnum implements the arbitrary-precision decimal fixed-point number
core of a POSIX bc-style calculator.

A Number models a signed rational of the form

	significand * 10^(-scale)

where the significand is an unbounded integer (backed by math/big.Int) and
scale is a nonnegative count of decimal digits kept after the point. Every
arithmetic kernel (Add, Sub, Mul, Divide, DivMod, Modulo, Raise, RaiseMod,
Sqrt) follows one rule: rescale both operands to a common scale by
multiplying or truncating-dividing by a power of ten, perform the integer
operation, then truncate or zero-pad the result to the declared output
scale. Truncation is always toward zero; there is no rounding mode.

Numbers are shared-ownership handles, not values: New creates one, Copy
shares it by incrementing a reference count, and Release drops a share,
returning the handle to an internal free list once the count reaches zero.
A slot holding a handle (the **Number out-parameter of Add, Sub, Mul,
Divide, DivMod, Modulo, Raise and RaiseMod) always has its prior occupant
released before the new result is installed.

Zero, One and Two are package singletons created once by init via
InitNumbers; callers obtain their own share with Copy rather than comparing
against these pointers.

This package has no file format or wire protocol of its own; the only
external representations are base-10 decimal strings (FromString/ToString)
and the callback-streamed multi-base text produced by OutNum.
*/
package bcnum

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// MarshalText and UnmarshalText are package functions rather than Number
// methods because Number is a ref-counted handle, not a value type: an
// UnmarshalText method on *Number would have to bypass the refcount
// discipline to overwrite its receiver in place.
package bcnum

// MarshalText renders n as its base-10 text form.
func MarshalText(n *Number) ([]byte, error) {
	return []byte(ToString(n)), nil
}

// UnmarshalText parses text into slot at the given scale. Parse failures
// are silent and install Zero, per FromString's contract.
func UnmarshalText(slot **Number, text []byte, scale uint32) {
	FromString(slot, string(text), scale)
}

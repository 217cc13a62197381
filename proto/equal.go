// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"bytes"
	"reflect"
)

// Equal reports whether two messages are equal: they must have the same
// concrete type and the same wire-format encoding. Two nil messages are
// equal; a nil message is not equal to a non-nil one, even if empty.
//
// Because the comparison is by encoding, field order and unknown fields
// matter, and a NaN value equals itself.
func Equal(x, y Message) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false
	}
	if x.SerializedSize() != y.SerializedSize() {
		return false
	}
	bx, err := MarshalOptions{UseCachedSize: true}.Marshal(x)
	if err != nil {
		return false
	}
	by, err := MarshalOptions{UseCachedSize: true}.Marshal(y)
	if err != nil {
		return false
	}
	return bytes.Equal(bx, by)
}

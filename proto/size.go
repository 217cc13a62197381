// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

// Size returns the size in bytes of the wire-format encoding of m.
// The result is cached in m and in every embedded message.
func Size(m Message) int {
	return MarshalOptions{}.Size(m)
}

// Size returns the size in bytes of the wire-format encoding of m.
func (o MarshalOptions) Size(m Message) int {
	if m == nil {
		return 0
	}
	if o.UseCachedSize {
		return m.CachedSize()
	}
	return m.SerializedSize()
}

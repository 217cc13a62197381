// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "math"

// Merge merges src into dst, which must be messages of the same type.
//
// Populated scalar fields in src are copied to dst, while populated
// singular messages in src are merged into dst. The elements of every
// repeated field in src are appended to the corresponding field in dst.
// The entries of every map field in src are copied into dst, possibly
// replacing existing entries. Unknown fields of src are appended to those
// of dst.
//
// It is equivalent to unmarshaling the encoded form of src into dst.
func Merge(dst, src Message) error {
	if src == nil {
		return nil
	}
	b, err := Marshal(src)
	if err != nil {
		return err
	}
	return trustedOptions(len(b)).Unmarshal(b, dst)
}

// Clone returns a deep copy of src, built in a message returned by
// newMessage.
func Clone[M Message](src M, newMessage func() M) (M, error) {
	dst := newMessage()
	if err := Merge(dst, src); err != nil {
		var zero M
		return zero, err
	}
	return dst, nil
}

// trustedOptions lifts the limits for input produced by Marshal, which may
// nest deeper than an untrusted peer is allowed to.
func trustedOptions(n int) UnmarshalOptions {
	return UnmarshalOptions{
		RecursionLimit: math.MaxInt32,
		SizeLimit:      n,
	}
}

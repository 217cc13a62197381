// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strs provides string manipulation functionality specific to protobuf.
package strs

import (
	"unicode/utf8"
)

// replacement is the encoding of utf8.RuneError.
const replacement = "�"

// EncodedLen returns the number of bytes Encode writes for s.
// Each byte that is not part of a valid UTF-8 sequence counts as the three
// bytes of U+FFFD.
func EncodedLen(s string) int {
	// ASCII fast path.
	i := 0
	for i < len(s) && s[i] < utf8.RuneSelf {
		i++
	}
	if i == len(s) {
		return i
	}
	n := i
	for i < len(s) {
		if s[i] < utf8.RuneSelf {
			i++
			n++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			n += len(replacement)
		} else {
			n += size
		}
		i += size
	}
	return n
}

// Encode writes s to dst, replacing each invalid byte with U+FFFD, and
// returns the number of bytes written. dst must hold at least EncodedLen(s)
// bytes.
func Encode(dst []byte, s string) int {
	if len(dst) >= len(s) && utf8.ValidString(s) {
		return copy(dst, s)
	}
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			n += copy(dst[n:], replacement)
		} else {
			n += copy(dst[n:], s[i:i+size])
		}
		i += size
	}
	return n
}

// AppendValid appends s to b with the same replacement rules as Encode.
func AppendValid(b []byte, s string) []byte {
	n := len(b)
	m := EncodedLen(s)
	if cap(b)-n < m {
		nb := make([]byte, n, n+m)
		copy(nb, b)
		b = nb
	}
	b = b[:n+m]
	Encode(b[n:], s)
	return b
}

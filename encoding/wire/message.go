// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// Message is the contract every generated message satisfies.
// The Reader and Writer only need this much to handle embedded messages
// and groups; package protoiface re-exports it for generated code.
type Message interface {
	// SerializedSize computes the encoded size and caches it.
	SerializedSize() int

	// CachedSize returns the size computed by the last SerializedSize call,
	// computing it first if there is none.
	CachedSize() int

	// WriteTo writes every set field to w. The fields of an embedded
	// message are written using their cached sizes.
	WriteTo(w *Writer) error

	// MergeFrom reads fields from r until the end of input, the end of the
	// current limit, or an END_GROUP tag. Fields already set are merged
	// according to their cardinality.
	MergeFrom(r *Reader) error
}

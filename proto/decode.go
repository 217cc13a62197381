// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/runtime/protoiface"
)

// UnmarshalOptions configures the unmarshaler.
//
// Example usage:
//
//	err := UnmarshalOptions{RecursionLimit: 16}.Unmarshal(b, m)
type UnmarshalOptions struct {
	// RecursionLimit bounds the nesting depth of messages and groups.
	// If zero, wire.DefaultRecursionLimit is used.
	RecursionLimit int

	// SizeLimit bounds the number of bytes read from the input.
	// If zero, wire.DefaultSizeLimit is used.
	SizeLimit int
}

var _ = protoiface.UnmarshalOptions(UnmarshalOptions{})

// Unmarshal parses the wire-format message in b and merges the result into m.
// Fields already set in m are kept or combined; call it on a fresh message
// to replace the contents.
func Unmarshal(b []byte, m Message) error {
	return UnmarshalOptions{}.Unmarshal(b, m)
}

// UnmarshalAt is like Unmarshal but reads b[off:off+n].
func UnmarshalAt(b []byte, off, n int, m Message) error {
	return UnmarshalOptions{}.UnmarshalAt(b, off, n, m)
}

// Unmarshal parses the wire-format message in b and merges the result into m.
func (o UnmarshalOptions) Unmarshal(b []byte, m Message) error {
	return o.UnmarshalAt(b, 0, len(b), m)
}

// UnmarshalAt is like Unmarshal but reads b[off:off+n].
func (o UnmarshalOptions) UnmarshalAt(b []byte, off, n int, m Message) error {
	r := wire.NewReaderAt(b, off, n)
	o.apply(r)
	if err := m.MergeFrom(r); err != nil {
		return err
	}
	return r.CheckLastTagWas(0)
}

func (o UnmarshalOptions) apply(r *wire.Reader) {
	if o.RecursionLimit > 0 {
		r.SetRecursionLimit(o.RecursionLimit)
	}
	if o.SizeLimit > 0 {
		r.SetSizeLimit(o.SizeLimit)
	}
}

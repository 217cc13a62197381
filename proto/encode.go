// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/internal/errors"
	"github.com/infiniteloopcloud/protonano/runtime/protoiface"
)

// MarshalOptions configures the marshaler.
//
// Example usage:
//
//	b, err := MarshalOptions{UseCachedSize: true}.Marshal(m)
type MarshalOptions struct {
	// UseCachedSize indicates that the result of a previous Size call
	// may be reused. The message must not have changed since. If it has,
	// Marshal fails or produces a truncated encoding.
	UseCachedSize bool
}

var _ = protoiface.MarshalOptions(MarshalOptions{})

// Marshal returns the wire-format encoding of m.
func Marshal(m Message) ([]byte, error) {
	return MarshalOptions{}.Marshal(m)
}

// Marshal returns the wire-format encoding of m.
func (o MarshalOptions) Marshal(m Message) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	b := make([]byte, o.Size(m))
	if err := MarshalTo(m, b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarshalTo writes the encoding of m to b, which must be exactly as long as
// the encoding. Embedded messages are written with their cached sizes, so
// Size must have been called on m since it last changed.
func MarshalTo(m Message, b []byte) error {
	return MarshalAt(m, b, 0, len(b))
}

// MarshalAt is like MarshalTo but writes to b[off:off+n].
func MarshalAt(m Message, b []byte, off, n int) error {
	w := wire.NewWriterAt(b, off, n)
	if err := m.WriteTo(w); err != nil {
		return err
	}
	if err := w.CheckNoSpaceLeft(); err != nil {
		return errors.Wrap(err, "marshaling %T", m)
	}
	return nil
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/internal/fieldmap"
	"github.com/infiniteloopcloud/protonano/runtime/protoiface"
)

// ExtendableMessage is embedded by generated messages that preserve unknown
// fields or declare extension ranges. It holds the size cache and every field
// the message does not decode itself.
//
// Generated MergeFrom methods pass unrecognized tags to StoreUnknownField,
// SerializedSize adds UnknownFieldsSize, and WriteTo ends with
// WriteUnknownFields, so such fields survive a decode and encode cycle
// byte for byte.
type ExtendableMessage struct {
	protoiface.SizeCache

	unknownFields *fieldmap.Map
}

func (x *ExtendableMessage) extendableMessage() *ExtendableMessage { return x }

// Extendable is the constraint satisfied by messages embedding
// ExtendableMessage.
type Extendable interface {
	Message
	extendableMessage() *ExtendableMessage
}

func (x *ExtendableMessage) fields() *fieldmap.Map {
	if x.unknownFields == nil {
		x.unknownFields = &fieldmap.Map{}
	}
	return x.unknownFields
}

// StoreUnknownField consumes the field whose tag was just read from r and
// stores its raw bytes. It reports false without consuming anything if tag
// is an END_GROUP tag, in which case MergeFrom should return.
//
// If an extension has already claimed the field number, the occurrence is
// decoded and merged into the extension's value instead.
func (x *ExtendableMessage) StoreUnknownField(r *wire.Reader, tag uint32) (bool, error) {
	start := r.Position()
	ok, err := r.SkipField(tag)
	if !ok || err != nil {
		return ok, err
	}
	x.InvalidateSize()
	b := r.Data(start, r.Position()-start)
	f := fieldmap.UnknownField{Tag: tag, Bytes: b}
	if err := x.fields().Add(wire.TagFieldNumber(tag), f); err != nil {
		return false, err
	}
	return true, nil
}

// UnknownFieldsSize returns the encoded size of the unknown fields and
// extensions.
func (x *ExtendableMessage) UnknownFieldsSize() int {
	return x.unknownFields.Size()
}

// WriteUnknownFields writes the unknown fields and extensions in increasing
// field number order. Occurrences of one field number keep their wire order.
func (x *ExtendableMessage) WriteUnknownFields(w *wire.Writer) error {
	return x.unknownFields.WriteTo(w)
}

// HasUnknownFields reports whether any unknown field or extension is present.
func (x *ExtendableMessage) HasUnknownFields() bool {
	return !x.unknownFields.IsEmpty()
}

// UnknownFieldsEqual reports whether x and y hold the same unknown fields and
// extensions. Generated Equal methods call it after comparing known fields.
func (x *ExtendableMessage) UnknownFieldsEqual(y *ExtendableMessage) bool {
	return x.unknownFields.Equal(y.unknownFields)
}

// UnknownFieldsHash returns a hash of the unknown fields and extensions,
// consistent with UnknownFieldsEqual. It is zero when there are none.
func (x *ExtendableMessage) UnknownFieldsHash() uint64 {
	if x.unknownFields.IsEmpty() {
		return 0
	}
	return x.unknownFields.Hash()
}

// CloneUnknownFields deep copies the unknown fields and extensions of x into
// dst, replacing those dst had.
func (x *ExtendableMessage) CloneUnknownFields(dst *ExtendableMessage) {
	dst.unknownFields = x.unknownFields.Clone()
	dst.InvalidateSize()
}

// ClearUnknownFields discards every unknown field and extension.
func (x *ExtendableMessage) ClearUnknownFields() {
	x.unknownFields = nil
	x.InvalidateSize()
}

// RawUnknownFields returns the encoding of the unknown fields and extensions,
// suitable for protoreflect.Message.SetUnknown.
func (x *ExtendableMessage) RawUnknownFields() (protoreflect.RawFields, error) {
	if x.unknownFields.IsEmpty() {
		return nil, nil
	}
	b := make([]byte, x.unknownFields.Size())
	w := wire.NewWriter(b)
	if err := x.unknownFields.WriteTo(w); err != nil {
		return nil, err
	}
	return protoreflect.RawFields(b), nil
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"bytes"
	"fmt"
	"math"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
)

// The functions in this file operate on a single field value held in an
// interface, dispatching on its Kind. The dynamic type of v must be the Go
// type documented for the kind by wire.Reader.ReadPrimitiveField, or a
// Message for message and group kinds.

// goTypeMatches reports whether v's dynamic type is the one used for kind k.
func goTypeMatches(k wire.Kind, v any) bool {
	switch v.(type) {
	case float64:
		return k == wire.DoubleKind
	case float32:
		return k == wire.FloatKind
	case int64:
		return k == wire.Int64Kind || k == wire.Sfixed64Kind || k == wire.Sint64Kind
	case uint64:
		return k == wire.Uint64Kind || k == wire.Fixed64Kind
	case int32:
		return k == wire.Int32Kind || k == wire.EnumKind || k == wire.Sfixed32Kind || k == wire.Sint32Kind
	case uint32:
		return k == wire.Uint32Kind || k == wire.Fixed32Kind
	case bool:
		return k == wire.BoolKind
	case string:
		return k == wire.StringKind
	case []byte:
		return k == wire.BytesKind
	}
	return false
}

// checkScalarType panics unless T is the Go type for kind k.
func checkScalarType[T any](k wire.Kind) {
	var zero T
	if !goTypeMatches(k, zero) {
		panic(fmt.Sprintf("proto: Go type %T cannot hold %v values", zero, k))
	}
}

func sizeValueNoTag(k wire.Kind, v any) int {
	switch k {
	case wire.DoubleKind, wire.Fixed64Kind, wire.Sfixed64Kind:
		return wire.LittleEndian64Size
	case wire.FloatKind, wire.Fixed32Kind, wire.Sfixed32Kind:
		return wire.LittleEndian32Size
	case wire.BoolKind:
		return 1
	case wire.Int64Kind:
		return wire.SizeInt64NoTag(v.(int64))
	case wire.Uint64Kind:
		return wire.SizeUint64NoTag(v.(uint64))
	case wire.Int32Kind, wire.EnumKind:
		return wire.SizeInt32NoTag(v.(int32))
	case wire.Uint32Kind:
		return wire.SizeUint32NoTag(v.(uint32))
	case wire.Sint32Kind:
		return wire.SizeSint32NoTag(v.(int32))
	case wire.Sint64Kind:
		return wire.SizeSint64NoTag(v.(int64))
	case wire.StringKind:
		return wire.SizeStringNoTag(v.(string))
	case wire.BytesKind:
		return wire.SizeBytesNoTag(v.([]byte))
	case wire.MessageKind:
		return wire.SizeMessageNoTag(v.(Message))
	case wire.GroupKind:
		return wire.SizeGroupNoTag(v.(Message))
	}
	panic(fmt.Sprintf("proto: invalid kind %v", k))
}

// sizeValue returns the size of v as field num, tag included.
func sizeValue(num wire.Number, k wire.Kind, v any) int {
	if k == wire.GroupKind {
		return wire.SizeGroup(num, v.(Message))
	}
	return wire.SizeTag(num) + sizeValueNoTag(k, v)
}

func writeValueNoTag(w *wire.Writer, k wire.Kind, v any) error {
	switch k {
	case wire.DoubleKind:
		return w.WriteDoubleNoTag(v.(float64))
	case wire.FloatKind:
		return w.WriteFloatNoTag(v.(float32))
	case wire.Int64Kind:
		return w.WriteInt64NoTag(v.(int64))
	case wire.Uint64Kind:
		return w.WriteUint64NoTag(v.(uint64))
	case wire.Int32Kind:
		return w.WriteInt32NoTag(v.(int32))
	case wire.Fixed64Kind:
		return w.WriteFixed64NoTag(v.(uint64))
	case wire.Fixed32Kind:
		return w.WriteFixed32NoTag(v.(uint32))
	case wire.BoolKind:
		return w.WriteBoolNoTag(v.(bool))
	case wire.StringKind:
		return w.WriteStringNoTag(v.(string))
	case wire.BytesKind:
		return w.WriteBytesNoTag(v.([]byte))
	case wire.Uint32Kind:
		return w.WriteUint32NoTag(v.(uint32))
	case wire.EnumKind:
		return w.WriteEnumNoTag(v.(int32))
	case wire.Sfixed32Kind:
		return w.WriteSfixed32NoTag(v.(int32))
	case wire.Sfixed64Kind:
		return w.WriteSfixed64NoTag(v.(int64))
	case wire.Sint32Kind:
		return w.WriteSint32NoTag(v.(int32))
	case wire.Sint64Kind:
		return w.WriteSint64NoTag(v.(int64))
	case wire.MessageKind:
		return w.WriteMessageNoTag(v.(Message))
	case wire.GroupKind:
		return w.WriteGroupNoTag(v.(Message))
	}
	panic(fmt.Sprintf("proto: invalid kind %v", k))
}

// writeValue writes v as field num, tag included.
func writeValue(w *wire.Writer, num wire.Number, k wire.Kind, v any) error {
	if k == wire.GroupKind {
		return w.WriteGroup(num, v.(Message))
	}
	if err := w.WriteTag(num, k.WireType()); err != nil {
		return err
	}
	return writeValueNoTag(w, k, v)
}

// readValue reads one value of kind k whose tag has been consumed.
// Messages and groups are decoded into a message from newMessage.
func readValue(r *wire.Reader, num wire.Number, k wire.Kind, newMessage func() Message) (any, error) {
	switch k {
	case wire.MessageKind:
		m := newMessage()
		if err := r.ReadMessage(m); err != nil {
			return nil, err
		}
		return m, nil
	case wire.GroupKind:
		m := newMessage()
		if err := r.ReadGroup(m, num); err != nil {
			return nil, err
		}
		return m, nil
	}
	return r.ReadPrimitiveField(k)
}

// equalValue compares two values of kind k. Floating-point values compare
// by bit pattern, so NaN equals itself as it does once encoded.
func equalValue(k wire.Kind, a, b any) bool {
	switch k {
	case wire.DoubleKind:
		return math.Float64bits(a.(float64)) == math.Float64bits(b.(float64))
	case wire.FloatKind:
		return math.Float32bits(a.(float32)) == math.Float32bits(b.(float32))
	case wire.BytesKind:
		return bytes.Equal(a.([]byte), b.([]byte))
	case wire.MessageKind, wire.GroupKind:
		return Equal(a.(Message), b.(Message))
	}
	return a == b
}

// cloneValue returns a copy of v that shares no mutable state with it.
func cloneValue(k wire.Kind, v any, newMessage func() Message) any {
	switch k {
	case wire.BytesKind:
		b := v.([]byte)
		if b == nil {
			return b
		}
		return append([]byte{}, b...)
	case wire.MessageKind, wire.GroupKind:
		m, err := Clone(v.(Message), newMessage)
		if err != nil {
			panic(fmt.Sprintf("proto: cloning %T: %v", v, err))
		}
		return m
	}
	return v
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testpb holds messages written in the shape the code generator
// emits. They exercise every primitive of package wire and every helper of
// package proto.
package testpb

import (
	"math"
	"slices"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/proto"
	"github.com/infiniteloopcloud/protonano/runtime/protoiface"
)

type ForeignEnum = int32

const (
	ForeignEnum_FOREIGN_ZERO ForeignEnum = 0
	ForeignEnum_FOREIGN_FOO  ForeignEnum = 4
	ForeignEnum_FOREIGN_BAR  ForeignEnum = 5
	ForeignEnum_FOREIGN_NEG  ForeignEnum = -1
)

// SimpleMessage drops unknown fields.
//
//	message SimpleMessage {
//	  optional int32 a = 1;
//	  optional SimpleMessage b = 2;
//	}
type SimpleMessage struct {
	protoiface.SizeCache

	A int32
	B *SimpleMessage
}

func (m *SimpleMessage) CachedSize() int {
	if n, ok := m.LoadSize(); ok {
		return n
	}
	return m.SerializedSize()
}

func (m *SimpleMessage) SerializedSize() int {
	n := 0
	if m.A != 0 {
		n += wire.SizeInt32(1, m.A)
	}
	if m.B != nil {
		n += wire.SizeMessage(2, m.B)
	}
	m.StoreSize(n)
	return n
}

func (m *SimpleMessage) WriteTo(w *wire.Writer) error {
	if m.A != 0 {
		if err := w.WriteInt32(1, m.A); err != nil {
			return err
		}
	}
	if m.B != nil {
		if err := w.WriteMessage(2, m.B); err != nil {
			return err
		}
	}
	return nil
}

func (m *SimpleMessage) MergeFrom(r *wire.Reader) error {
	m.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 8:
			if m.A, err = r.ReadInt32(); err != nil {
				return err
			}
		case 18:
			if m.B == nil {
				m.B = &SimpleMessage{}
			}
			if err := r.ReadMessage(m.B); err != nil {
				return err
			}
		default:
			ok, err := r.SkipField(tag)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}

// TestAllTypes covers every field type and cardinality.
//
//	message TestAllTypes {
//	  optional int32    optional_int32    =  1;
//	  optional int64    optional_int64    =  2;
//	  optional uint32   optional_uint32   =  3;
//	  optional uint64   optional_uint64   =  4;
//	  optional sint32   optional_sint32   =  5;
//	  optional sint64   optional_sint64   =  6;
//	  optional fixed32  optional_fixed32  =  7;
//	  optional fixed64  optional_fixed64  =  8;
//	  optional sfixed32 optional_sfixed32 =  9;
//	  optional sfixed64 optional_sfixed64 = 10;
//	  optional float    optional_float    = 11;
//	  optional double   optional_double   = 12;
//	  optional bool     optional_bool     = 13;
//	  optional string   optional_string   = 14;
//	  optional bytes    optional_bytes    = 15;
//	  optional group OptionalGroup = 16 {
//	    optional int32 a = 17;
//	  }
//	  optional NestedMessage optional_nested_message = 18;
//	  optional ForeignEnum   optional_foreign_enum   = 21;
//
//	  repeated int32         repeated_int32          = 31;
//	  repeated string        repeated_string         = 32;
//	  repeated NestedMessage repeated_nested_message = 33;
//	  repeated sint64        packed_sint64           = 34 [packed = true];
//	  repeated double        packed_double           = 35 [packed = true];
//
//	  map<int32, int32>          map_int32_int32           = 56;
//	  map<string, NestedMessage> map_string_nested_message = 57;
//	  map<string, bytes>         map_string_bytes          = 58;
//	}
type TestAllTypes struct {
	proto.ExtendableMessage

	OptionalInt32         int32
	OptionalInt64         int64
	OptionalUint32        uint32
	OptionalUint64        uint64
	OptionalSint32        int32
	OptionalSint64        int64
	OptionalFixed32       uint32
	OptionalFixed64       uint64
	OptionalSfixed32      int32
	OptionalSfixed64      int64
	OptionalFloat         float32
	OptionalDouble        float64
	OptionalBool          bool
	OptionalString        string
	OptionalBytes         []byte
	OptionalGroup         *TestAllTypes_OptionalGroup
	OptionalNestedMessage *TestAllTypes_NestedMessage
	OptionalForeignEnum   ForeignEnum

	RepeatedInt32         []int32
	RepeatedString        []string
	RepeatedNestedMessage []*TestAllTypes_NestedMessage
	PackedSint64          []int64
	PackedDouble          []float64

	MapInt32Int32          map[int32]int32
	MapStringNestedMessage map[string]*TestAllTypes_NestedMessage
	MapStringBytes         map[string][]byte
}

func NewTestAllTypes() *TestAllTypes { return &TestAllTypes{} }

func (m *TestAllTypes) CachedSize() int {
	if n, ok := m.LoadSize(); ok {
		return n
	}
	return m.SerializedSize()
}

func (m *TestAllTypes) SerializedSize() int {
	n := 0
	if m.OptionalInt32 != 0 {
		n += wire.SizeInt32(1, m.OptionalInt32)
	}
	if m.OptionalInt64 != 0 {
		n += wire.SizeInt64(2, m.OptionalInt64)
	}
	if m.OptionalUint32 != 0 {
		n += wire.SizeUint32(3, m.OptionalUint32)
	}
	if m.OptionalUint64 != 0 {
		n += wire.SizeUint64(4, m.OptionalUint64)
	}
	if m.OptionalSint32 != 0 {
		n += wire.SizeSint32(5, m.OptionalSint32)
	}
	if m.OptionalSint64 != 0 {
		n += wire.SizeSint64(6, m.OptionalSint64)
	}
	if m.OptionalFixed32 != 0 {
		n += wire.SizeFixed32(7, m.OptionalFixed32)
	}
	if m.OptionalFixed64 != 0 {
		n += wire.SizeFixed64(8, m.OptionalFixed64)
	}
	if m.OptionalSfixed32 != 0 {
		n += wire.SizeSfixed32(9, m.OptionalSfixed32)
	}
	if m.OptionalSfixed64 != 0 {
		n += wire.SizeSfixed64(10, m.OptionalSfixed64)
	}
	if math.Float32bits(m.OptionalFloat) != 0 {
		n += wire.SizeFloat(11, m.OptionalFloat)
	}
	if math.Float64bits(m.OptionalDouble) != 0 {
		n += wire.SizeDouble(12, m.OptionalDouble)
	}
	if m.OptionalBool {
		n += wire.SizeBool(13, m.OptionalBool)
	}
	if m.OptionalString != "" {
		n += wire.SizeString(14, m.OptionalString)
	}
	if len(m.OptionalBytes) > 0 {
		n += wire.SizeBytes(15, m.OptionalBytes)
	}
	if m.OptionalGroup != nil {
		n += wire.SizeGroup(16, m.OptionalGroup)
	}
	if m.OptionalNestedMessage != nil {
		n += wire.SizeMessage(18, m.OptionalNestedMessage)
	}
	if m.OptionalForeignEnum != 0 {
		n += wire.SizeEnum(21, m.OptionalForeignEnum)
	}
	for _, v := range m.RepeatedInt32 {
		n += wire.SizeInt32(31, v)
	}
	for _, v := range m.RepeatedString {
		n += wire.SizeString(32, v)
	}
	for _, v := range m.RepeatedNestedMessage {
		n += wire.SizeMessage(33, v)
	}
	if len(m.PackedSint64) > 0 {
		d := 0
		for _, v := range m.PackedSint64 {
			d += wire.SizeSint64NoTag(v)
		}
		n += wire.SizeTag(34) + wire.SizeRawVarint32(uint32(d)) + d
	}
	if len(m.PackedDouble) > 0 {
		d := wire.LittleEndian64Size * len(m.PackedDouble)
		n += wire.SizeTag(35) + wire.SizeRawVarint32(uint32(d)) + d
	}
	n += proto.SizeMapField(56, m.MapInt32Int32, wire.Int32Kind, wire.Int32Kind)
	n += proto.SizeMapField(57, m.MapStringNestedMessage, wire.StringKind, wire.MessageKind)
	n += proto.SizeMapField(58, m.MapStringBytes, wire.StringKind, wire.BytesKind)
	n += m.UnknownFieldsSize()
	m.StoreSize(n)
	return n
}

func (m *TestAllTypes) WriteTo(w *wire.Writer) error {
	if m.OptionalInt32 != 0 {
		if err := w.WriteInt32(1, m.OptionalInt32); err != nil {
			return err
		}
	}
	if m.OptionalInt64 != 0 {
		if err := w.WriteInt64(2, m.OptionalInt64); err != nil {
			return err
		}
	}
	if m.OptionalUint32 != 0 {
		if err := w.WriteUint32(3, m.OptionalUint32); err != nil {
			return err
		}
	}
	if m.OptionalUint64 != 0 {
		if err := w.WriteUint64(4, m.OptionalUint64); err != nil {
			return err
		}
	}
	if m.OptionalSint32 != 0 {
		if err := w.WriteSint32(5, m.OptionalSint32); err != nil {
			return err
		}
	}
	if m.OptionalSint64 != 0 {
		if err := w.WriteSint64(6, m.OptionalSint64); err != nil {
			return err
		}
	}
	if m.OptionalFixed32 != 0 {
		if err := w.WriteFixed32(7, m.OptionalFixed32); err != nil {
			return err
		}
	}
	if m.OptionalFixed64 != 0 {
		if err := w.WriteFixed64(8, m.OptionalFixed64); err != nil {
			return err
		}
	}
	if m.OptionalSfixed32 != 0 {
		if err := w.WriteSfixed32(9, m.OptionalSfixed32); err != nil {
			return err
		}
	}
	if m.OptionalSfixed64 != 0 {
		if err := w.WriteSfixed64(10, m.OptionalSfixed64); err != nil {
			return err
		}
	}
	if math.Float32bits(m.OptionalFloat) != 0 {
		if err := w.WriteFloat(11, m.OptionalFloat); err != nil {
			return err
		}
	}
	if math.Float64bits(m.OptionalDouble) != 0 {
		if err := w.WriteDouble(12, m.OptionalDouble); err != nil {
			return err
		}
	}
	if m.OptionalBool {
		if err := w.WriteBool(13, m.OptionalBool); err != nil {
			return err
		}
	}
	if m.OptionalString != "" {
		if err := w.WriteString(14, m.OptionalString); err != nil {
			return err
		}
	}
	if len(m.OptionalBytes) > 0 {
		if err := w.WriteBytes(15, m.OptionalBytes); err != nil {
			return err
		}
	}
	if m.OptionalGroup != nil {
		if err := w.WriteGroup(16, m.OptionalGroup); err != nil {
			return err
		}
	}
	if m.OptionalNestedMessage != nil {
		if err := w.WriteMessage(18, m.OptionalNestedMessage); err != nil {
			return err
		}
	}
	if m.OptionalForeignEnum != 0 {
		if err := w.WriteEnum(21, m.OptionalForeignEnum); err != nil {
			return err
		}
	}
	for _, v := range m.RepeatedInt32 {
		if err := w.WriteInt32(31, v); err != nil {
			return err
		}
	}
	for _, v := range m.RepeatedString {
		if err := w.WriteString(32, v); err != nil {
			return err
		}
	}
	for _, v := range m.RepeatedNestedMessage {
		if err := w.WriteMessage(33, v); err != nil {
			return err
		}
	}
	if len(m.PackedSint64) > 0 {
		d := 0
		for _, v := range m.PackedSint64 {
			d += wire.SizeSint64NoTag(v)
		}
		if err := w.WriteRawVarint32(274); err != nil {
			return err
		}
		if err := w.WriteRawVarint32(uint32(d)); err != nil {
			return err
		}
		for _, v := range m.PackedSint64 {
			if err := w.WriteSint64NoTag(v); err != nil {
				return err
			}
		}
	}
	if len(m.PackedDouble) > 0 {
		if err := w.WriteRawVarint32(282); err != nil {
			return err
		}
		if err := w.WriteRawVarint32(uint32(wire.LittleEndian64Size * len(m.PackedDouble))); err != nil {
			return err
		}
		for _, v := range m.PackedDouble {
			if err := w.WriteDoubleNoTag(v); err != nil {
				return err
			}
		}
	}
	if err := proto.WriteMapField(w, 56, m.MapInt32Int32, wire.Int32Kind, wire.Int32Kind); err != nil {
		return err
	}
	if err := proto.WriteMapField(w, 57, m.MapStringNestedMessage, wire.StringKind, wire.MessageKind); err != nil {
		return err
	}
	if err := proto.WriteMapField(w, 58, m.MapStringBytes, wire.StringKind, wire.BytesKind); err != nil {
		return err
	}
	return m.WriteUnknownFields(w)
}

func (m *TestAllTypes) MergeFrom(r *wire.Reader) error {
	m.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 8:
			if m.OptionalInt32, err = r.ReadInt32(); err != nil {
				return err
			}
		case 16:
			if m.OptionalInt64, err = r.ReadInt64(); err != nil {
				return err
			}
		case 24:
			if m.OptionalUint32, err = r.ReadUint32(); err != nil {
				return err
			}
		case 32:
			if m.OptionalUint64, err = r.ReadUint64(); err != nil {
				return err
			}
		case 40:
			if m.OptionalSint32, err = r.ReadSint32(); err != nil {
				return err
			}
		case 48:
			if m.OptionalSint64, err = r.ReadSint64(); err != nil {
				return err
			}
		case 61:
			if m.OptionalFixed32, err = r.ReadFixed32(); err != nil {
				return err
			}
		case 65:
			if m.OptionalFixed64, err = r.ReadFixed64(); err != nil {
				return err
			}
		case 77:
			if m.OptionalSfixed32, err = r.ReadSfixed32(); err != nil {
				return err
			}
		case 81:
			if m.OptionalSfixed64, err = r.ReadSfixed64(); err != nil {
				return err
			}
		case 93:
			if m.OptionalFloat, err = r.ReadFloat(); err != nil {
				return err
			}
		case 97:
			if m.OptionalDouble, err = r.ReadDouble(); err != nil {
				return err
			}
		case 104:
			if m.OptionalBool, err = r.ReadBool(); err != nil {
				return err
			}
		case 114:
			if m.OptionalString, err = r.ReadString(); err != nil {
				return err
			}
		case 122:
			if m.OptionalBytes, err = r.ReadBytes(); err != nil {
				return err
			}
		case 131:
			if m.OptionalGroup == nil {
				m.OptionalGroup = &TestAllTypes_OptionalGroup{}
			}
			if err := r.ReadGroup(m.OptionalGroup, 16); err != nil {
				return err
			}
		case 146:
			if m.OptionalNestedMessage == nil {
				m.OptionalNestedMessage = &TestAllTypes_NestedMessage{}
			}
			if err := r.ReadMessage(m.OptionalNestedMessage); err != nil {
				return err
			}
		case 168:
			if m.OptionalForeignEnum, err = r.ReadEnum(); err != nil {
				return err
			}
		case 248:
			n, err := wire.RepeatedFieldLength(r, 248)
			if err != nil {
				return err
			}
			m.RepeatedInt32 = slices.Grow(m.RepeatedInt32, n)
			for i := 0; i < n; i++ {
				if i > 0 {
					if _, err := r.ReadTag(); err != nil {
						return err
					}
				}
				v, err := r.ReadInt32()
				if err != nil {
					return err
				}
				m.RepeatedInt32 = append(m.RepeatedInt32, v)
			}
		case 250:
			old, err := pushPacked(r)
			if err != nil {
				return err
			}
			for !r.IsAtEnd() {
				v, err := r.ReadInt32()
				if err != nil {
					return err
				}
				m.RepeatedInt32 = append(m.RepeatedInt32, v)
			}
			r.PopLimit(old)
		case 258:
			v, err := r.ReadString()
			if err != nil {
				return err
			}
			m.RepeatedString = append(m.RepeatedString, v)
		case 266:
			v := &TestAllTypes_NestedMessage{}
			if err := r.ReadMessage(v); err != nil {
				return err
			}
			m.RepeatedNestedMessage = append(m.RepeatedNestedMessage, v)
		case 272:
			v, err := r.ReadSint64()
			if err != nil {
				return err
			}
			m.PackedSint64 = append(m.PackedSint64, v)
		case 274:
			old, err := pushPacked(r)
			if err != nil {
				return err
			}
			for !r.IsAtEnd() {
				v, err := r.ReadSint64()
				if err != nil {
					return err
				}
				m.PackedSint64 = append(m.PackedSint64, v)
			}
			r.PopLimit(old)
		case 281:
			v, err := r.ReadDouble()
			if err != nil {
				return err
			}
			m.PackedDouble = append(m.PackedDouble, v)
		case 282:
			old, err := pushPacked(r)
			if err != nil {
				return err
			}
			m.PackedDouble = slices.Grow(m.PackedDouble, r.BytesUntilLimit()/wire.LittleEndian64Size)
			for !r.IsAtEnd() {
				v, err := r.ReadDouble()
				if err != nil {
					return err
				}
				m.PackedDouble = append(m.PackedDouble, v)
			}
			r.PopLimit(old)
		case 450:
			if m.MapInt32Int32, err = proto.MergeMapEntry(r, m.MapInt32Int32, wire.Int32Kind, wire.Int32Kind, nil); err != nil {
				return err
			}
		case 458:
			if m.MapStringNestedMessage, err = proto.MergeMapEntry(r, m.MapStringNestedMessage, wire.StringKind, wire.MessageKind, NewNestedMessage); err != nil {
				return err
			}
		case 466:
			if m.MapStringBytes, err = proto.MergeMapEntry(r, m.MapStringBytes, wire.StringKind, wire.BytesKind, nil); err != nil {
				return err
			}
		default:
			ok, err := m.StoreUnknownField(r, tag)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}

// pushPacked enters the payload of a packed field.
func pushPacked(r *wire.Reader) (int, error) {
	n, err := r.ReadLength()
	if err != nil {
		return 0, err
	}
	return r.PushLimit(n)
}

// TestAllTypes_OptionalGroup is the OptionalGroup group of TestAllTypes.
type TestAllTypes_OptionalGroup struct {
	protoiface.SizeCache

	A int32
}

func NewOptionalGroup() *TestAllTypes_OptionalGroup { return &TestAllTypes_OptionalGroup{} }

func (m *TestAllTypes_OptionalGroup) CachedSize() int {
	if n, ok := m.LoadSize(); ok {
		return n
	}
	return m.SerializedSize()
}

func (m *TestAllTypes_OptionalGroup) SerializedSize() int {
	n := 0
	if m.A != 0 {
		n += wire.SizeInt32(17, m.A)
	}
	m.StoreSize(n)
	return n
}

func (m *TestAllTypes_OptionalGroup) WriteTo(w *wire.Writer) error {
	if m.A != 0 {
		return w.WriteInt32(17, m.A)
	}
	return nil
}

func (m *TestAllTypes_OptionalGroup) MergeFrom(r *wire.Reader) error {
	m.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 136:
			if m.A, err = r.ReadInt32(); err != nil {
				return err
			}
		default:
			ok, err := r.SkipField(tag)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}

// TestAllTypes_NestedMessage is the NestedMessage of TestAllTypes.
//
//	message NestedMessage {
//	  optional int32 a = 1;
//	  optional TestAllTypes corecursive = 2;
//	}
type TestAllTypes_NestedMessage struct {
	protoiface.SizeCache

	A           int32
	Corecursive *TestAllTypes
}

func NewNestedMessage() *TestAllTypes_NestedMessage { return &TestAllTypes_NestedMessage{} }

func (m *TestAllTypes_NestedMessage) CachedSize() int {
	if n, ok := m.LoadSize(); ok {
		return n
	}
	return m.SerializedSize()
}

func (m *TestAllTypes_NestedMessage) SerializedSize() int {
	n := 0
	if m.A != 0 {
		n += wire.SizeInt32(1, m.A)
	}
	if m.Corecursive != nil {
		n += wire.SizeMessage(2, m.Corecursive)
	}
	m.StoreSize(n)
	return n
}

func (m *TestAllTypes_NestedMessage) WriteTo(w *wire.Writer) error {
	if m.A != 0 {
		if err := w.WriteInt32(1, m.A); err != nil {
			return err
		}
	}
	if m.Corecursive != nil {
		if err := w.WriteMessage(2, m.Corecursive); err != nil {
			return err
		}
	}
	return nil
}

func (m *TestAllTypes_NestedMessage) MergeFrom(r *wire.Reader) error {
	m.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 8:
			if m.A, err = r.ReadInt32(); err != nil {
				return err
			}
		case 18:
			if m.Corecursive == nil {
				m.Corecursive = &TestAllTypes{}
			}
			if err := r.ReadMessage(m.Corecursive); err != nil {
				return err
			}
		default:
			ok, err := r.SkipField(tag)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}

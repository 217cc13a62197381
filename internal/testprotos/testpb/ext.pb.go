// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testpb

import (
	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/proto"
)

// TestAllExtensions has one known field and extensions 100 to max.
//
//	message TestAllExtensions {
//	  optional int32 a = 1;
//	  extensions 100 to max;
//	}
type TestAllExtensions struct {
	proto.ExtendableMessage

	A int32
}

func NewTestAllExtensions() *TestAllExtensions { return &TestAllExtensions{} }

func (m *TestAllExtensions) CachedSize() int {
	if n, ok := m.LoadSize(); ok {
		return n
	}
	return m.SerializedSize()
}

func (m *TestAllExtensions) SerializedSize() int {
	n := 0
	if m.A != 0 {
		n += wire.SizeInt32(1, m.A)
	}
	n += m.UnknownFieldsSize()
	m.StoreSize(n)
	return n
}

func (m *TestAllExtensions) WriteTo(w *wire.Writer) error {
	if m.A != 0 {
		if err := w.WriteInt32(1, m.A); err != nil {
			return err
		}
	}
	return m.WriteUnknownFields(w)
}

func (m *TestAllExtensions) MergeFrom(r *wire.Reader) error {
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

// UnawareMessage declares no fields, so everything it reads is preserved
// as unknown fields.
//
//	message UnawareMessage {
//	  extensions 1 to max;
//	}
type UnawareMessage struct {
	proto.ExtendableMessage
}

func NewUnawareMessage() *UnawareMessage { return &UnawareMessage{} }

func (m *UnawareMessage) CachedSize() int {
	if n, ok := m.LoadSize(); ok {
		return n
	}
	return m.SerializedSize()
}

func (m *UnawareMessage) SerializedSize() int {
	n := m.UnknownFieldsSize()
	m.StoreSize(n)
	return n
}

func (m *UnawareMessage) WriteTo(w *wire.Writer) error {
	return m.WriteUnknownFields(w)
}

func (m *UnawareMessage) MergeFrom(r *wire.Reader) error {
	m.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		if tag == 0 {
			return nil
		}
		ok, err := m.StoreUnknownField(r, tag)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

//	extend TestAllExtensions {
//	  optional int32         optional_int32_ext          = 101;
//	  optional sint64        optional_sint64_ext         = 102;
//	  optional fixed32       optional_fixed32_ext        = 103;
//	  optional double        optional_double_ext         = 104;
//	  optional float         optional_float_ext          = 105;
//	  optional bool          optional_bool_ext           = 106;
//	  optional string        optional_string_ext         = 107;
//	  optional bytes         optional_bytes_ext          = 108;
//	  optional ForeignEnum   optional_foreign_enum_ext   = 109;
//	  optional NestedMessage optional_nested_message_ext = 110;
//	  optional group OptionalGroup_ext                   = 111;
//	  optional uint64        optional_uint64_ext         = 112;
//
//	  repeated int32         repeated_int32_ext          = 121;
//	  repeated int32         packed_int32_ext            = 122 [packed = true];
//	  repeated string        repeated_string_ext         = 123;
//	  repeated NestedMessage repeated_nested_message_ext = 124;
//	  repeated double        packed_double_ext           = 125 [packed = true];
//	  repeated group RepeatedGroup_ext                   = 126;
//	  repeated bytes         repeated_bytes_ext          = 127;
//	  repeated sint32        packed_sint32_ext           = 128 [packed = true];
//	}
var (
	E_OptionalInt32Ext         = proto.CreatePrimitiveTyped[*TestAllExtensions, int32](wire.Int32Kind, 808)
	E_OptionalSint64Ext        = proto.CreatePrimitiveTyped[*TestAllExtensions, int64](wire.Sint64Kind, 816)
	E_OptionalFixed32Ext       = proto.CreatePrimitiveTyped[*TestAllExtensions, uint32](wire.Fixed32Kind, 829)
	E_OptionalDoubleExt        = proto.CreatePrimitiveTyped[*TestAllExtensions, float64](wire.DoubleKind, 833)
	E_OptionalFloatExt         = proto.CreatePrimitiveTyped[*TestAllExtensions, float32](wire.FloatKind, 845)
	E_OptionalBoolExt          = proto.CreatePrimitiveTyped[*TestAllExtensions, bool](wire.BoolKind, 848)
	E_OptionalStringExt        = proto.CreatePrimitiveTyped[*TestAllExtensions, string](wire.StringKind, 858)
	E_OptionalBytesExt         = proto.CreatePrimitiveTyped[*TestAllExtensions, []byte](wire.BytesKind, 866)
	E_OptionalForeignEnumExt   = proto.CreatePrimitiveTyped[*TestAllExtensions, ForeignEnum](wire.EnumKind, 872)
	E_OptionalNestedMessageExt = proto.CreateMessageTyped[*TestAllExtensions](wire.MessageKind, NewNestedMessage, 882)
	E_OptionalGroupExt         = proto.CreateMessageTyped[*TestAllExtensions](wire.GroupKind, NewOptionalGroup, 891)
	E_OptionalUint64Ext        = proto.CreatePrimitiveTyped[*TestAllExtensions, uint64](wire.Uint64Kind, 896)

	E_RepeatedInt32Ext         = proto.CreateRepeatedPrimitiveTyped[*TestAllExtensions, int32](wire.Int32Kind, 968, 968, 970)
	E_PackedInt32Ext           = proto.CreateRepeatedPrimitiveTyped[*TestAllExtensions, int32](wire.Int32Kind, 978, 976, 978)
	E_RepeatedStringExt        = proto.CreateRepeatedPrimitiveTyped[*TestAllExtensions, string](wire.StringKind, 986, 986, 986)
	E_RepeatedNestedMessageExt = proto.CreateRepeatedMessageTyped[*TestAllExtensions](wire.MessageKind, NewNestedMessage, 994)
	E_PackedDoubleExt          = proto.CreateRepeatedPrimitiveTyped[*TestAllExtensions, float64](wire.DoubleKind, 1002, 1001, 1002)
	E_RepeatedGroupExt         = proto.CreateRepeatedMessageTyped[*TestAllExtensions](wire.GroupKind, NewOptionalGroup, 1011)
	E_RepeatedBytesExt         = proto.CreateRepeatedPrimitiveTyped[*TestAllExtensions, []byte](wire.BytesKind, 1018, 1018, 1018)
	E_PackedSint32Ext          = proto.CreateRepeatedPrimitiveTyped[*TestAllExtensions, int32](wire.Sint32Kind, 1026, 1024, 1026)
)

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/testing/protopack"

	"github.com/infiniteloopcloud/protonano/internal/testprotos/testpb"
	"github.com/infiniteloopcloud/protonano/proto"
	"github.com/infiniteloopcloud/protonano/runtime/protoiface"
)

type testProto struct {
	desc     string
	decodeTo []proto.Message
	wire     []byte
	// canonical reports whether wire is exactly what Marshal produces.
	canonical bool
}

// cmpOpts compares the declared fields of test messages. Unknown fields and
// extensions are compared separately with proto.Equal.
var cmpOpts = cmp.Options{
	cmpopts.IgnoreTypes(protoiface.SizeCache{}, proto.ExtendableMessage{}),
	cmpopts.EquateEmpty(),
}

type buildOpt func(*testpb.TestAllExtensions)

func build(m *testpb.TestAllExtensions, opts ...buildOpt) *testpb.TestAllExtensions {
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func extend[T any](e *proto.Extension[*testpb.TestAllExtensions, T], v T) buildOpt {
	return func(m *testpb.TestAllExtensions) {
		proto.SetExtension(m, e, v)
	}
}

var testValidMessages = []testProto{
	{
		desc:      "nested varints",
		canonical: true,
		decodeTo: []proto.Message{&testpb.SimpleMessage{
			A: 300,
			B: &testpb.SimpleMessage{A: 150},
		}},
		wire: []byte{0x08, 0xac, 0x02, 0x12, 0x03, 0x08, 0x96, 0x01},
	},
	{
		desc:      "basic scalar types",
		canonical: true,
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			OptionalInt32:       1001,
			OptionalInt64:       1002,
			OptionalUint32:      1003,
			OptionalUint64:      1004,
			OptionalSint32:      1005,
			OptionalSint64:      1006,
			OptionalFixed32:     1007,
			OptionalFixed64:     1008,
			OptionalSfixed32:    1009,
			OptionalSfixed64:    1010,
			OptionalFloat:       1011.5,
			OptionalDouble:      1012.5,
			OptionalBool:        true,
			OptionalString:      "string",
			OptionalBytes:       []byte("bytes"),
			OptionalForeignEnum: testpb.ForeignEnum_FOREIGN_BAR,
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(1001),
			protopack.Tag{Number: 2, Type: protopack.VarintType}, protopack.Varint(1002),
			protopack.Tag{Number: 3, Type: protopack.VarintType}, protopack.Uvarint(1003),
			protopack.Tag{Number: 4, Type: protopack.VarintType}, protopack.Uvarint(1004),
			protopack.Tag{Number: 5, Type: protopack.VarintType}, protopack.Svarint(1005),
			protopack.Tag{Number: 6, Type: protopack.VarintType}, protopack.Svarint(1006),
			protopack.Tag{Number: 7, Type: protopack.Fixed32Type}, protopack.Uint32(1007),
			protopack.Tag{Number: 8, Type: protopack.Fixed64Type}, protopack.Uint64(1008),
			protopack.Tag{Number: 9, Type: protopack.Fixed32Type}, protopack.Int32(1009),
			protopack.Tag{Number: 10, Type: protopack.Fixed64Type}, protopack.Int64(1010),
			protopack.Tag{Number: 11, Type: protopack.Fixed32Type}, protopack.Float32(1011.5),
			protopack.Tag{Number: 12, Type: protopack.Fixed64Type}, protopack.Float64(1012.5),
			protopack.Tag{Number: 13, Type: protopack.VarintType}, protopack.Bool(true),
			protopack.Tag{Number: 14, Type: protopack.BytesType}, protopack.String("string"),
			protopack.Tag{Number: 15, Type: protopack.BytesType}, protopack.Bytes([]byte("bytes")),
			protopack.Tag{Number: 21, Type: protopack.VarintType}, protopack.Varint(testpb.ForeignEnum_FOREIGN_BAR),
		}.Marshal(),
	},
	{
		desc:      "basic scalar extensions",
		canonical: true,
		decodeTo: []proto.Message{build(
			&testpb.TestAllExtensions{},
			extend(testpb.E_OptionalInt32Ext, int32(1001)),
			extend(testpb.E_OptionalSint64Ext, int64(-1002)),
			extend(testpb.E_OptionalFixed32Ext, uint32(1003)),
			extend(testpb.E_OptionalDoubleExt, float64(1004.5)),
			extend(testpb.E_OptionalFloatExt, float32(1005.5)),
			extend(testpb.E_OptionalBoolExt, true),
			extend(testpb.E_OptionalStringExt, "string"),
			extend(testpb.E_OptionalBytesExt, []byte("bytes")),
			extend(testpb.E_OptionalForeignEnumExt, testpb.ForeignEnum_FOREIGN_FOO),
			extend(testpb.E_OptionalUint64Ext, uint64(1012)),
		)},
		wire: protopack.Message{
			protopack.Tag{Number: 101, Type: protopack.VarintType}, protopack.Varint(1001),
			protopack.Tag{Number: 102, Type: protopack.VarintType}, protopack.Svarint(-1002),
			protopack.Tag{Number: 103, Type: protopack.Fixed32Type}, protopack.Uint32(1003),
			protopack.Tag{Number: 104, Type: protopack.Fixed64Type}, protopack.Float64(1004.5),
			protopack.Tag{Number: 105, Type: protopack.Fixed32Type}, protopack.Float32(1005.5),
			protopack.Tag{Number: 106, Type: protopack.VarintType}, protopack.Bool(true),
			protopack.Tag{Number: 107, Type: protopack.BytesType}, protopack.String("string"),
			protopack.Tag{Number: 108, Type: protopack.BytesType}, protopack.Bytes([]byte("bytes")),
			protopack.Tag{Number: 109, Type: protopack.VarintType}, protopack.Varint(testpb.ForeignEnum_FOREIGN_FOO),
			protopack.Tag{Number: 112, Type: protopack.VarintType}, protopack.Uvarint(1012),
		}.Marshal(),
	},
	{
		desc:      "negative values",
		canonical: true,
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			OptionalInt32:       -1,
			OptionalInt64:       -2,
			OptionalSint32:      -3,
			OptionalSint64:      -4,
			OptionalSfixed32:    -5,
			OptionalSfixed64:    -6,
			OptionalFloat:       -7.5,
			OptionalDouble:      -8.5,
			OptionalForeignEnum: testpb.ForeignEnum_FOREIGN_NEG,
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(-1),
			protopack.Tag{Number: 2, Type: protopack.VarintType}, protopack.Varint(-2),
			protopack.Tag{Number: 5, Type: protopack.VarintType}, protopack.Svarint(-3),
			protopack.Tag{Number: 6, Type: protopack.VarintType}, protopack.Svarint(-4),
			protopack.Tag{Number: 9, Type: protopack.Fixed32Type}, protopack.Int32(-5),
			protopack.Tag{Number: 10, Type: protopack.Fixed64Type}, protopack.Int64(-6),
			protopack.Tag{Number: 11, Type: protopack.Fixed32Type}, protopack.Float32(-7.5),
			protopack.Tag{Number: 12, Type: protopack.Fixed64Type}, protopack.Float64(-8.5),
			protopack.Tag{Number: 21, Type: protopack.VarintType}, protopack.Varint(-1),
		}.Marshal(),
	},
	{
		desc:      "groups",
		canonical: true,
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			OptionalGroup: &testpb.TestAllTypes_OptionalGroup{A: 1017},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 16, Type: protopack.StartGroupType},
			protopack.Tag{Number: 17, Type: protopack.VarintType}, protopack.Varint(1017),
			protopack.Tag{Number: 16, Type: protopack.EndGroupType},
		}.Marshal(),
	},
	{
		desc: "groups (field overridden)",
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			OptionalGroup: &testpb.TestAllTypes_OptionalGroup{A: 2},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 16, Type: protopack.StartGroupType},
			protopack.Tag{Number: 17, Type: protopack.VarintType}, protopack.Varint(1),
			protopack.Tag{Number: 16, Type: protopack.EndGroupType},
			protopack.Tag{Number: 16, Type: protopack.StartGroupType},
			protopack.Tag{Number: 17, Type: protopack.VarintType}, protopack.Varint(2),
			protopack.Tag{Number: 16, Type: protopack.EndGroupType},
		}.Marshal(),
	},
	{
		desc:      "messages",
		canonical: true,
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			OptionalNestedMessage: &testpb.TestAllTypes_NestedMessage{
				A: 42,
				Corecursive: &testpb.TestAllTypes{
					OptionalInt32: 43,
				},
			},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 18, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(42),
				protopack.Tag{Number: 2, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
					protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(43),
				}),
			}),
		}.Marshal(),
	},
	{
		desc: "messages (split across multiple tags)",
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			OptionalNestedMessage: &testpb.TestAllTypes_NestedMessage{
				A: 42,
				Corecursive: &testpb.TestAllTypes{
					OptionalInt32: 43,
				},
			},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 18, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(42),
			}),
			protopack.Tag{Number: 18, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 2, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
					protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(43),
				}),
			}),
		}.Marshal(),
	},
	{
		desc:      "repeated fields",
		canonical: true,
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			RepeatedInt32:  []int32{1001, 2002},
			RepeatedString: []string{"foo", "bar"},
			RepeatedNestedMessage: []*testpb.TestAllTypes_NestedMessage{
				{A: 1},
				{},
				{A: 3},
			},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 31, Type: protopack.VarintType}, protopack.Varint(1001),
			protopack.Tag{Number: 31, Type: protopack.VarintType}, protopack.Varint(2002),
			protopack.Tag{Number: 32, Type: protopack.BytesType}, protopack.String("foo"),
			protopack.Tag{Number: 32, Type: protopack.BytesType}, protopack.String("bar"),
			protopack.Tag{Number: 33, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(1),
			}),
			protopack.Tag{Number: 33, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{}),
			protopack.Tag{Number: 33, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(3),
			}),
		}.Marshal(),
	},
	{
		desc: "repeated fields (interleaved)",
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			RepeatedInt32:  []int32{1, 2, 3},
			RepeatedString: []string{"a", "b"},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 31, Type: protopack.VarintType}, protopack.Varint(1),
			protopack.Tag{Number: 32, Type: protopack.BytesType}, protopack.String("a"),
			protopack.Tag{Number: 31, Type: protopack.VarintType}, protopack.Varint(2),
			protopack.Tag{Number: 32, Type: protopack.BytesType}, protopack.String("b"),
			protopack.Tag{Number: 31, Type: protopack.VarintType}, protopack.Varint(3),
		}.Marshal(),
	},
	{
		desc:      "packed repeated fields",
		canonical: true,
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			PackedSint64: []int64{-1, 2, 1000},
			PackedDouble: []float64{1.5, -2},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 34, Type: protopack.BytesType}, protopack.LengthPrefix{
				protopack.Svarint(-1), protopack.Svarint(2), protopack.Svarint(1000),
			},
			protopack.Tag{Number: 35, Type: protopack.BytesType}, protopack.LengthPrefix{
				protopack.Float64(1.5), protopack.Float64(-2),
			},
		}.Marshal(),
	},
	{
		desc: "packed and unpacked forms mixed",
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			RepeatedInt32: []int32{1, 2, 3, 4},
			PackedSint64:  []int64{5, 6, 7},
			PackedDouble:  []float64{1},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 31, Type: protopack.BytesType}, protopack.LengthPrefix{
				protopack.Varint(1), protopack.Varint(2), protopack.Varint(3),
			},
			protopack.Tag{Number: 31, Type: protopack.VarintType}, protopack.Varint(4),
			protopack.Tag{Number: 34, Type: protopack.VarintType}, protopack.Svarint(5),
			protopack.Tag{Number: 34, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Svarint(6)},
			protopack.Tag{Number: 34, Type: protopack.VarintType}, protopack.Svarint(7),
			protopack.Tag{Number: 35, Type: protopack.Fixed64Type}, protopack.Float64(1),
		}.Marshal(),
	},
	{
		desc:      "maps",
		canonical: true,
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			MapInt32Int32: map[int32]int32{1: 2, 3: 4},
			MapStringNestedMessage: map[string]*testpb.TestAllTypes_NestedMessage{
				"a": {A: 1},
			},
			MapStringBytes: map[string][]byte{"k": []byte("v")},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 56, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(1),
				protopack.Tag{Number: 2, Type: protopack.VarintType}, protopack.Varint(2),
			}),
			protopack.Tag{Number: 56, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(3),
				protopack.Tag{Number: 2, Type: protopack.VarintType}, protopack.Varint(4),
			}),
			protopack.Tag{Number: 57, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.String("a"),
				protopack.Tag{Number: 2, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
					protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(1),
				}),
			}),
			protopack.Tag{Number: 58, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.String("k"),
				protopack.Tag{Number: 2, Type: protopack.BytesType}, protopack.Bytes([]byte("v")),
			}),
		}.Marshal(),
	},
	{
		desc: "map entries with missing key or value",
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			MapInt32Int32: map[int32]int32{0: 0},
			MapStringNestedMessage: map[string]*testpb.TestAllTypes_NestedMessage{
				"x": {},
			},
			MapStringBytes: map[string][]byte{"": []byte("v")},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 56, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{}),
			protopack.Tag{Number: 57, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.String("x"),
			}),
			protopack.Tag{Number: 58, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 2, Type: protopack.BytesType}, protopack.Bytes([]byte("v")),
			}),
		}.Marshal(),
	},
	{
		desc: "map entries (value before key, duplicate keys, unknown fields)",
		decodeTo: []proto.Message{&testpb.TestAllTypes{
			MapInt32Int32: map[int32]int32{1: 3},
		}},
		wire: protopack.Message{
			protopack.Tag{Number: 56, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 2, Type: protopack.VarintType}, protopack.Varint(2),
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(1),
			}),
			protopack.Tag{Number: 56, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(1),
				protopack.Tag{Number: 3, Type: protopack.BytesType}, protopack.String("ignored"),
				protopack.Tag{Number: 2, Type: protopack.VarintType}, protopack.Varint(3),
			}),
		}.Marshal(),
	},
	{
		desc:      "repeated extensions",
		canonical: true,
		decodeTo: []proto.Message{build(
			&testpb.TestAllExtensions{},
			extend(testpb.E_RepeatedInt32Ext, []int32{1, 2}),
			extend(testpb.E_PackedInt32Ext, []int32{3, 4}),
			extend(testpb.E_RepeatedStringExt, []string{"a", "b"}),
			extend(testpb.E_RepeatedNestedMessageExt, []*testpb.TestAllTypes_NestedMessage{{A: 1}}),
			extend(testpb.E_PackedDoubleExt, []float64{1.5}),
			extend(testpb.E_RepeatedGroupExt, []*testpb.TestAllTypes_OptionalGroup{{A: 7}}),
			extend(testpb.E_RepeatedBytesExt, [][]byte{[]byte("x")}),
			extend(testpb.E_PackedSint32Ext, []int32{-1, 1}),
		)},
		wire: protopack.Message{
			protopack.Tag{Number: 121, Type: protopack.VarintType}, protopack.Varint(1),
			protopack.Tag{Number: 121, Type: protopack.VarintType}, protopack.Varint(2),
			protopack.Tag{Number: 122, Type: protopack.BytesType}, protopack.LengthPrefix{
				protopack.Varint(3), protopack.Varint(4),
			},
			protopack.Tag{Number: 123, Type: protopack.BytesType}, protopack.String("a"),
			protopack.Tag{Number: 123, Type: protopack.BytesType}, protopack.String("b"),
			protopack.Tag{Number: 124, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(1),
			}),
			protopack.Tag{Number: 125, Type: protopack.BytesType}, protopack.LengthPrefix{
				protopack.Float64(1.5),
			},
			protopack.Tag{Number: 126, Type: protopack.StartGroupType},
			protopack.Tag{Number: 17, Type: protopack.VarintType}, protopack.Varint(7),
			protopack.Tag{Number: 126, Type: protopack.EndGroupType},
			protopack.Tag{Number: 127, Type: protopack.BytesType}, protopack.Bytes([]byte("x")),
			protopack.Tag{Number: 128, Type: protopack.BytesType}, protopack.LengthPrefix{
				protopack.Svarint(-1), protopack.Svarint(1),
			},
		}.Marshal(),
	},
	{
		desc:      "message and group extensions",
		canonical: true,
		decodeTo: []proto.Message{build(
			&testpb.TestAllExtensions{A: 1},
			extend(testpb.E_OptionalNestedMessageExt, &testpb.TestAllTypes_NestedMessage{A: 5}),
			extend(testpb.E_OptionalGroupExt, &testpb.TestAllTypes_OptionalGroup{A: 6}),
		)},
		wire: protopack.Message{
			protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(1),
			protopack.Tag{Number: 110, Type: protopack.BytesType}, protopack.LengthPrefix(protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(5),
			}),
			protopack.Tag{Number: 111, Type: protopack.StartGroupType},
			protopack.Tag{Number: 17, Type: protopack.VarintType}, protopack.Varint(6),
			protopack.Tag{Number: 111, Type: protopack.EndGroupType},
		}.Marshal(),
	},
}

// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structpb_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/testing/protopack"

	"github.com/infiniteloopcloud/protonano/proto"
	"github.com/infiniteloopcloud/protonano/testing/protocmp"
	spb "github.com/infiniteloopcloud/protonano/types/known/structpb"
)

func TestWire(t *testing.T) {
	tests := []struct {
		desc  string
		in    proto.Message
		empty func() proto.Message
		wire  protopack.Message
	}{{
		desc:  "null",
		in:    spb.NewNullValue(),
		empty: func() proto.Message { return &spb.Value{} },
		wire:  protopack.Message{protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(0)},
	}, {
		desc:  "number",
		in:    spb.NewNumberValue(-1.5),
		empty: func() proto.Message { return &spb.Value{} },
		wire:  protopack.Message{protopack.Tag{Number: 2, Type: protopack.Fixed64Type}, protopack.Float64(-1.5)},
	}, {
		desc:  "zero number is kept",
		in:    spb.NewNumberValue(0),
		empty: func() proto.Message { return &spb.Value{} },
		wire:  protopack.Message{protopack.Tag{Number: 2, Type: protopack.Fixed64Type}, protopack.Float64(0)},
	}, {
		desc:  "string",
		in:    spb.NewStringValue("héllo"),
		empty: func() proto.Message { return &spb.Value{} },
		wire:  protopack.Message{protopack.Tag{Number: 3, Type: protopack.BytesType}, protopack.String("héllo")},
	}, {
		desc:  "false is kept",
		in:    spb.NewBoolValue(false),
		empty: func() proto.Message { return &spb.Value{} },
		wire:  protopack.Message{protopack.Tag{Number: 4, Type: protopack.VarintType}, protopack.Bool(false)},
	}, {
		desc:  "empty value",
		in:    &spb.Value{},
		empty: func() proto.Message { return &spb.Value{} },
		wire:  protopack.Message{},
	}, {
		desc: "struct",
		in: &spb.Struct{Fields: map[string]*spb.Value{
			"k": spb.NewBoolValue(true),
		}},
		empty: func() proto.Message { return &spb.Struct{} },
		wire: protopack.Message{
			protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.String("k"),
				protopack.Tag{Number: 2, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
					protopack.Tag{Number: 4, Type: protopack.VarintType}, protopack.Bool(true),
				}},
			}},
		},
	}, {
		desc: "list",
		in: &spb.ListValue{Values: []*spb.Value{
			spb.NewStringValue("a"),
			spb.NewListValue(&spb.ListValue{}),
		}},
		empty: func() proto.Message { return &spb.ListValue{} },
		wire: protopack.Message{
			protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
				protopack.Tag{Number: 3, Type: protopack.BytesType}, protopack.String("a"),
			}},
			protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
				protopack.Tag{Number: 6, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{}},
			}},
		},
	}, {
		desc: "struct value",
		in: spb.NewStructValue(&spb.Struct{Fields: map[string]*spb.Value{
			"n": spb.NewNullValue(),
		}}),
		empty: func() proto.Message { return &spb.Value{} },
		wire: protopack.Message{
			protopack.Tag{Number: 5, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
					protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.String("n"),
					protopack.Tag{Number: 2, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
						protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(0),
					}},
				}},
			}},
		},
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			b, err := proto.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if diff := cmp.Diff(tt.wire.Marshal(), b, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Marshal mismatch (-want +got):\n%s", diff)
			}
			if got, want := proto.Size(tt.in), len(b); got != want {
				t.Errorf("Size = %d, want %d", got, want)
			}
			got := tt.empty()
			if err := proto.Unmarshal(b, got); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if diff := cmp.Diff(tt.in, got, protocmp.Transform()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNilListElement(t *testing.T) {
	in := &spb.ListValue{Values: []*spb.Value{nil}}
	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := protopack.Message{
		protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{}},
	}.Marshal()
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("Marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestValueLastKindWins(t *testing.T) {
	b := protopack.Message{
		protopack.Tag{Number: 3, Type: protopack.BytesType}, protopack.String("first"),
		protopack.Tag{Number: 4, Type: protopack.VarintType}, protopack.Bool(true),
	}.Marshal()
	got := &spb.Value{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if diff := cmp.Diff(spb.NewBoolValue(true), got, protocmp.Transform()); diff != "" {
		t.Errorf("Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

func TestValueMergesStructOccurrences(t *testing.T) {
	entry := func(k, s string) protopack.Message {
		return protopack.Message{
			protopack.Tag{Number: 5, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
				protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
					protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.String(k),
					protopack.Tag{Number: 2, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
						protopack.Tag{Number: 3, Type: protopack.BytesType}, protopack.String(s),
					}},
				}},
			}},
		}
	}
	b := append(entry("a", "x").Marshal(), entry("b", "y").Marshal()...)
	got := &spb.Value{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	want := spb.NewStructValue(&spb.Struct{Fields: map[string]*spb.Value{
		"a": spb.NewStringValue("x"),
		"b": spb.NewStringValue("y"),
	}})
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

func TestSkipsUnknownFields(t *testing.T) {
	b := protopack.Message{
		protopack.Tag{Number: 9, Type: protopack.BytesType}, protopack.String("ignored"),
		protopack.Tag{Number: 1, Type: protopack.BytesType}, protopack.LengthPrefix{protopack.Message{
			protopack.Tag{Number: 3, Type: protopack.BytesType}, protopack.String("kept"),
		}},
	}.Marshal()
	got := &spb.ListValue{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if diff := cmp.Diff([]interface{}{"kept"}, got.AsSlice()); diff != "" {
		t.Errorf("AsSlice mismatch (-want +got):\n%s", diff)
	}
}

func TestToStruct(t *testing.T) {
	tests := []struct {
		in      map[string]interface{}
		wantPB  *spb.Struct
		wantErr bool
	}{{
		in:     nil,
		wantPB: new(spb.Struct),
	}, {
		in: map[string]interface{}{
			"nil":     nil,
			"bool":    bool(false),
			"int":     int(-123),
			"uint64":  uint64(123),
			"float32": float32(123.125),
			"string":  string("hello, world!"),
			"bytes":   []byte("\xde\xad\xbe\xef"),
			"map":     map[string]interface{}{"k1": "v1", "k2": "v2"},
			"slice":   []interface{}{"one", "two", "three"},
		},
		wantPB: &spb.Struct{Fields: map[string]*spb.Value{
			"nil":     spb.NewNullValue(),
			"bool":    spb.NewBoolValue(false),
			"int":     spb.NewNumberValue(-123),
			"uint64":  spb.NewNumberValue(123),
			"float32": spb.NewNumberValue(123.125),
			"string":  spb.NewStringValue("hello, world!"),
			"bytes":   spb.NewStringValue("3q2+7w=="),
			"map": spb.NewStructValue(&spb.Struct{Fields: map[string]*spb.Value{
				"k1": spb.NewStringValue("v1"),
				"k2": spb.NewStringValue("v2"),
			}}),
			"slice": spb.NewListValue(&spb.ListValue{Values: []*spb.Value{
				spb.NewStringValue("one"),
				spb.NewStringValue("two"),
				spb.NewStringValue("three"),
			}}),
		}},
	}, {
		in:      map[string]interface{}{"\xde\xad\xbe\xef": "<invalid UTF-8>"},
		wantErr: true,
	}, {
		in:      map[string]interface{}{"<invalid UTF-8>": "\xde\xad\xbe\xef"},
		wantErr: true,
	}, {
		in:      map[string]interface{}{"key": protocmp.Transform()},
		wantErr: true,
	}}

	for _, tt := range tests {
		gotPB, gotErr := spb.NewStruct(tt.in)
		if diff := cmp.Diff(tt.wantPB, gotPB, protocmp.Transform(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("NewStruct(%v) output mismatch (-want +got):\n%s", tt.in, diff)
		}
		if (gotErr != nil) != tt.wantErr {
			t.Errorf("NewStruct(%v) error mismatch: got %v, want %v", tt.in, gotErr, tt.wantErr)
		}
	}
}

func TestFromValue(t *testing.T) {
	tests := []struct {
		in   *spb.Value
		want interface{}
	}{
		{in: nil, want: nil},
		{in: new(spb.Value), want: nil},
		{in: spb.NewNullValue(), want: nil},
		{in: spb.NewNumberValue(math.NaN()), want: "NaN"},
		{in: spb.NewNumberValue(math.Inf(-1)), want: "-Infinity"},
		{in: spb.NewNumberValue(2.5), want: float64(2.5)},
		{in: spb.NewStringValue("s"), want: "s"},
		{in: spb.NewListValue(nil), want: []interface{}{}},
		{in: spb.NewStructValue(nil), want: map[string]interface{}{}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.in.AsInterface()); diff != "" {
			t.Errorf("AsInterface(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestJSON(t *testing.T) {
	in := `{"a":[1,"two",true,null],"b":{"c":1.5}}`
	got := &spb.Struct{}
	if err := json.Unmarshal([]byte(in), got); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	want := &spb.Struct{Fields: map[string]*spb.Value{
		"a": spb.NewListValue(&spb.ListValue{Values: []*spb.Value{
			spb.NewNumberValue(1),
			spb.NewStringValue("two"),
			spb.NewBoolValue(true),
			spb.NewNullValue(),
		}}),
		"b": spb.NewStructValue(&spb.Struct{Fields: map[string]*spb.Value{
			"c": spb.NewNumberValue(1.5),
		}}),
	}}
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("json.Unmarshal mismatch (-want +got):\n%s", diff)
	}
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	if string(b) != in {
		t.Errorf("json.Marshal = %s, want %s", b, in)
	}
}

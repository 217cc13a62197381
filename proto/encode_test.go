// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protopack"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/internal/testprotos/testpb"
	"github.com/infiniteloopcloud/protonano/proto"
)

func TestEncode(t *testing.T) {
	for _, test := range testValidMessages {
		for _, want := range test.decodeTo {
			t.Run(fmt.Sprintf("%s (%T)", test.desc, want), func(t *testing.T) {
				wire, err := proto.Marshal(want)
				if err != nil {
					t.Fatalf("Marshal error: %v", err)
				}
				if size := proto.Size(want); size != len(wire) {
					t.Errorf("Size and marshal disagree: Size(m)=%v; len(Marshal(m))=%v", size, len(wire))
				}
				if test.canonical && !bytes.Equal(wire, test.wire) {
					t.Errorf("Marshal output mismatch:\ngot  %x\nwant %x", wire, test.wire)
				}

				got := newLike(want)
				if err := proto.Unmarshal(wire, got); err != nil {
					t.Fatalf("Unmarshal error: %v", err)
				}
				if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
					t.Errorf("round trip mismatch (-want +got):\n%s", diff)
				}
				if !proto.Equal(got, want) {
					t.Errorf("round trip result not equal to want")
				}
			})
		}
	}
}

func TestEncodeNonCanonicalInput(t *testing.T) {
	// Decoding then encoding normalizes the input to one canonical form.
	for _, test := range testValidMessages {
		if test.canonical {
			continue
		}
		for _, want := range test.decodeTo {
			t.Run(fmt.Sprintf("%s (%T)", test.desc, want), func(t *testing.T) {
				got := newLike(want)
				if err := proto.Unmarshal(test.wire, got); err != nil {
					t.Fatalf("Unmarshal error: %v", err)
				}
				gotWire, err := proto.Marshal(got)
				if err != nil {
					t.Fatalf("Marshal error: %v", err)
				}
				wantWire, err := proto.Marshal(want)
				if err != nil {
					t.Fatalf("Marshal error: %v", err)
				}
				if !bytes.Equal(gotWire, wantWire) {
					t.Errorf("Marshal output mismatch:\ngot  %x\nwant %x", gotWire, wantWire)
				}
			})
		}
	}
}

func TestEncodeNil(t *testing.T) {
	b, err := proto.Marshal(nil)
	if b != nil || err != nil {
		t.Errorf("Marshal(nil) = %x, %v; want nil, nil", b, err)
	}
	if got := proto.Size(nil); got != 0 {
		t.Errorf("Size(nil) = %d, want 0", got)
	}
}

func TestEncodeEmpty(t *testing.T) {
	for _, m := range []proto.Message{
		&testpb.SimpleMessage{},
		&testpb.TestAllTypes{},
		&testpb.TestAllExtensions{},
		&testpb.UnawareMessage{},
	} {
		b, err := proto.Marshal(m)
		if err != nil {
			t.Errorf("Marshal(%T) error: %v", m, err)
			continue
		}
		if len(b) != 0 {
			t.Errorf("Marshal(%T) = %x, want empty", m, b)
		}
	}
}

func TestEncodeNegativeInt32(t *testing.T) {
	// Negative int32 values are sign-extended so that they decode as the same
	// value when read as int64.
	m := &testpb.TestAllTypes{OptionalInt32: -1}
	b, err := proto.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := protopack.Message{
		protopack.Tag{Number: 1, Type: protopack.VarintType}, protopack.Varint(-1),
	}.Marshal()
	if !bytes.Equal(b, want) || len(b) != 11 {
		t.Errorf("Marshal = %x, want %x", b, want)
	}
	var m64 testpb.TestAllTypes
	b[0] = protopack.Message{protopack.Tag{Number: 2, Type: protopack.VarintType}}.Marshal()[0]
	if err := proto.Unmarshal(b, &m64); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if m64.OptionalInt64 != -1 {
		t.Errorf("OptionalInt64 = %d, want -1", m64.OptionalInt64)
	}
}

func TestEncodeInvalidUTF8(t *testing.T) {
	// Invalid UTF-8 is not rejected on output; each invalid byte is written
	// as U+FFFD.
	m := &testpb.TestAllTypes{OptionalString: "a\xffb"}
	b, err := proto.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := protopack.Message{
		protopack.Tag{Number: 14, Type: protopack.BytesType}, protopack.String("a\uFFFDb"),
	}.Marshal()
	if !bytes.Equal(b, want) {
		t.Errorf("Marshal = %x, want %x", b, want)
	}
	got := &testpb.TestAllTypes{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.OptionalString != "a\uFFFDb" {
		t.Errorf("OptionalString = %q, want %q", got.OptionalString, "a\uFFFDb")
	}
}

func TestMarshalTo(t *testing.T) {
	m := testValidMessages[0].decodeTo[0]
	want := testValidMessages[0].wire
	n := proto.Size(m)

	b := make([]byte, n)
	if err := proto.MarshalTo(m, b); err != nil {
		t.Fatalf("MarshalTo error: %v", err)
	}
	if !bytes.Equal(b, want) {
		t.Errorf("MarshalTo = %x, want %x", b, want)
	}

	b = bytes.Repeat([]byte{0xee}, n+4)
	if err := proto.MarshalAt(m, b, 2, n); err != nil {
		t.Fatalf("MarshalAt error: %v", err)
	}
	if !bytes.Equal(b[2:2+n], want) || b[0] != 0xee || b[1] != 0xee || b[n+2] != 0xee || b[n+3] != 0xee {
		t.Errorf("MarshalAt = %x, want %x in the middle", b, want)
	}
}

func TestMarshalToWrongSize(t *testing.T) {
	m := testValidMessages[0].decodeTo[0]
	n := proto.Size(m)

	err := proto.MarshalTo(m, make([]byte, n-1))
	var oos *wire.OutOfSpaceError
	if !errors.As(err, &oos) {
		t.Fatalf("MarshalTo into a short buffer: %v, want *wire.OutOfSpaceError", err)
	}
	if !errors.Is(err, wire.ErrOutOfSpace) || !errors.Is(err, proto.Error) {
		t.Errorf("MarshalTo error %v does not match ErrOutOfSpace and proto.Error", err)
	}

	err = proto.MarshalTo(m, make([]byte, n+1))
	if err == nil {
		t.Fatalf("MarshalTo into a long buffer succeeded, want error")
	}
	if !errors.Is(err, proto.Error) {
		t.Errorf("MarshalTo error %v does not match proto.Error", err)
	}
	var left *wire.SpaceLeftError
	if !errors.As(err, &left) || left.Left != 1 || !errors.Is(err, wire.ErrSpaceLeft) {
		t.Errorf("MarshalTo into a long buffer: %v, want *wire.SpaceLeftError{Left: 1}", err)
	}
	if errors.Is(err, wire.ErrOutOfSpace) {
		t.Errorf("MarshalTo error %v matches ErrOutOfSpace", err)
	}
	if !strings.Contains(err.Error(), "1 bytes left") {
		t.Errorf("MarshalTo error %q does not report the space left", err)
	}
}

func TestMarshalUseCachedSize(t *testing.T) {
	m := &testpb.TestAllTypes{OptionalInt32: 1}
	n := proto.Size(m)

	// Mutating a field directly leaves the cached size stale.
	m.OptionalInt64 = 2
	if got := (proto.MarshalOptions{UseCachedSize: true}).Size(m); got != n {
		t.Errorf("cached Size = %d, want stale size %d", got, n)
	}
	if _, err := (proto.MarshalOptions{UseCachedSize: true}).Marshal(m); !errors.Is(err, wire.ErrOutOfSpace) {
		t.Errorf("Marshal with stale cached size: %v, want %v", err, wire.ErrOutOfSpace)
	}

	b, err := proto.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if len(b) != proto.Size(m) || len(b) == n {
		t.Errorf("Marshal after mutation wrote %d bytes, want fresh size", len(b))
	}
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wirefuzz includes a fuzzer for the wire marshaler and unmarshaler.
package wirefuzz

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/infiniteloopcloud/protonano/internal/testprotos/testpb"
	"github.com/infiniteloopcloud/protonano/proto"
)

// Fuzz is a fuzzer for proto.Marshal and proto.Unmarshal.
func Fuzz(data []byte) (score int) {
	for _, newf := range []func() proto.Message{
		func() proto.Message { return testpb.NewUnawareMessage() },
		func() proto.Message { return testpb.NewTestAllTypes() },
		func() proto.Message { return testpb.NewTestAllExtensions() },
	} {
		m1 := newf()
		if err := proto.Unmarshal(data, m1); err != nil {
			continue
		}
		score = 1
		data1, err := proto.Marshal(m1)
		if err != nil {
			panic(err)
		}
		if proto.Size(m1) != len(data1) {
			panic("size does not match output")
		}
		if err := validate(data1); err != nil {
			panic(fmt.Sprintf("%T: invalid output: %v", m1, err))
		}
		m2 := newf()
		if err := proto.Unmarshal(data1, m2); err != nil {
			panic(err)
		}
		if !proto.Equal(m1, m2) {
			panic("not equal")
		}
	}
	return score
}

// validate checks that b is a sequence of well-formed fields.
func validate(b []byte) error {
	for len(b) > 0 {
		_, _, n := protowire.ConsumeField(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

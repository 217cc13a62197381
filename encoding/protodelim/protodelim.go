// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protodelim marshals and unmarshals varint size-delimited messages,
// the framing used to store several messages back to back in one stream.
package protodelim

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/proto"
)

// MarshalOptions is a configurable varint size-delimited marshaler.
type MarshalOptions struct{ proto.MarshalOptions }

// MarshalTo writes a varint size-delimited wire-format message to w.
// If w returns an error, MarshalTo returns it unchanged.
func MarshalTo(w io.Writer, m proto.Message) (int, error) {
	return MarshalOptions{}.MarshalTo(w, m)
}

// MarshalTo writes a varint size-delimited wire-format message to w
// with the provided options. The prefix and the message are written
// with a single call to w.Write.
func (o MarshalOptions) MarshalTo(w io.Writer, m proto.Message) (int, error) {
	size := 0
	if m != nil {
		size = o.MarshalOptions.Size(m)
	}
	prefix := wire.SizeRawVarint32(uint32(size))
	b := make([]byte, prefix+size)
	if err := wire.NewWriter(b).WriteRawVarint32(uint32(size)); err != nil {
		return 0, err
	}
	if size > 0 {
		if err := proto.MarshalAt(m, b, prefix, size); err != nil {
			return 0, err
		}
	}
	return w.Write(b)
}

// Reader is the interface expected by UnmarshalFrom.
// It is implemented by *bufio.Reader.
type Reader interface {
	io.Reader
	io.ByteReader
}

// UnmarshalOptions is a configurable varint size-delimited unmarshaler.
type UnmarshalOptions struct {
	proto.UnmarshalOptions

	// MaxSize is the maximum size in wire-format bytes of a single message.
	// Unmarshaling a message larger than MaxSize returns a
	// *SizeTooLargeError. A zero MaxSize means a default of 4 MiB;
	// -1 means no limit.
	MaxSize int64
}

const defaultMaxSize = 4 << 20

// SizeTooLargeError is an error returned when the size of a message
// exceeds the maximum.
type SizeTooLargeError struct {
	// Size is the varint size of the message encountered
	// that was larger than the provided MaxSize.
	Size uint64

	// MaxSize is the MaxSize limit configured in UnmarshalOptions, which Size exceeded.
	MaxSize uint64
}

func (e *SizeTooLargeError) Error() string {
	return fmt.Sprintf("message size %d exceeded unmarshaler's maximum configured size %d", e.Size, e.MaxSize)
}

// UnmarshalFrom parses and consumes a varint size-delimited wire-format
// message from r.
//
// The error is io.EOF only if no bytes are read. If an EOF happens after
// reading some but not all the bytes, UnmarshalFrom returns a non-io.EOF
// error. In particular if r returns a non-io.EOF error, UnmarshalFrom
// returns it unchanged, and if only a size is read with no subsequent
// message, io.ErrUnexpectedEOF is returned.
func UnmarshalFrom(r Reader, m proto.Message) error {
	return UnmarshalOptions{}.UnmarshalFrom(r, m)
}

// UnmarshalFrom parses and consumes a varint size-delimited wire-format
// message from r with the provided options.
func (o UnmarshalOptions) UnmarshalFrom(r Reader, m proto.Message) error {
	var sizeArr [binary.MaxVarintLen64]byte
	sizeBuf := sizeArr[:0]
	for i := range sizeArr {
		b, err := r.ReadByte()
		if err != nil {
			// Immediate EOF is unexpected.
			if err == io.EOF && i != 0 {
				break
			}
			return err
		}
		sizeBuf = append(sizeBuf, b)
		if b < 0x80 {
			break
		}
	}
	size, n := protowire.ConsumeVarint(sizeBuf)
	if n < 0 {
		return protowire.ParseError(n)
	}

	maxSize := o.MaxSize
	if maxSize == 0 {
		maxSize = defaultMaxSize
	}
	if maxSize != -1 && size > uint64(maxSize) {
		return &SizeTooLargeError{Size: size, MaxSize: uint64(maxSize)}
	}

	var b []byte
	var err error
	if br, ok := r.(*bufio.Reader); ok {
		// The decoder copies what it keeps, so the bufio.Reader's
		// buffer can be parsed in place.
		b, err = br.Peek(int(size))
		if err == nil {
			defer br.Discard(int(size))
		} else {
			b = nil
		}
	}
	if b == nil {
		b = make([]byte, size)
		_, err = io.ReadFull(r, b)
	}

	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	return o.UnmarshalOptions.Unmarshal(b, m)
}

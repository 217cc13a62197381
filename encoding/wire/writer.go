// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/infiniteloopcloud/protonano/internal/strs"
)

// Writer encodes wire-format primitives into a fixed-capacity destination.
// It never grows: callers size the destination with the Size functions and
// a write that does not fit fails with an OutOfSpaceError.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf   []byte
	start int
	pos   int
	limit int
}

// NewWriter returns a Writer over all of b.
func NewWriter(b []byte) *Writer {
	return NewWriterAt(b, 0, len(b))
}

// NewWriterAt returns a Writer over b[off:off+n].
// It panics if the range does not lie within b.
func NewWriterAt(b []byte, off, n int) *Writer {
	if off < 0 || n < 0 || n > len(b)-off {
		panic(fmt.Sprintf("wire: invalid writer range [%d:%d+%d] of %d bytes", off, off, n, len(b)))
	}
	return &Writer{buf: b, start: off, pos: off, limit: off + n}
}

// SpaceLeft returns the number of bytes that may still be written.
func (w *Writer) SpaceLeft() int {
	return w.limit - w.pos
}

// CheckNoSpaceLeft reports an error unless the destination is exactly full.
// It is used after writing a message into a buffer of its computed size.
func (w *Writer) CheckNoSpaceLeft() error {
	if n := w.SpaceLeft(); n != 0 {
		return &SpaceLeftError{Left: n}
	}
	return nil
}

// Position returns the number of bytes written since the start of the range.
func (w *Writer) Position() int {
	return w.pos - w.start
}

// Reset rewinds the Writer to the start of its range.
func (w *Writer) Reset() {
	w.pos = w.start
}

func (w *Writer) outOfSpace() error {
	return &OutOfSpaceError{Position: w.pos - w.start, Limit: w.limit - w.start}
}

// WriteTag writes a tag for the given field number and wire type.
func (w *Writer) WriteTag(num Number, typ Type) error {
	return w.WriteRawVarint32(MakeTag(num, typ))
}

// WriteRawByte writes a single byte.
func (w *Writer) WriteRawByte(b byte) error {
	if w.pos == w.limit {
		return w.outOfSpace()
	}
	w.buf[w.pos] = b
	w.pos++
	return nil
}

// WriteRawBytes writes b verbatim.
func (w *Writer) WriteRawBytes(b []byte) error {
	if w.limit-w.pos < len(b) {
		return w.outOfSpace()
	}
	w.pos += copy(w.buf[w.pos:], b)
	return nil
}

// WriteRawVarint32 writes v as an unsigned varint of at most five bytes.
func (w *Writer) WriteRawVarint32(v uint32) error {
	return w.WriteRawVarint64(uint64(v))
}

// WriteRawVarint64 writes v as an unsigned varint of at most ten bytes.
// Nothing is written if v does not fit.
func (w *Writer) WriteRawVarint64(v uint64) error {
	if w.limit-w.pos < SizeRawVarint64(v) {
		return w.outOfSpace()
	}
	for v >= 0x80 {
		w.buf[w.pos] = byte(v) | 0x80
		w.pos++
		v >>= 7
	}
	w.buf[w.pos] = byte(v)
	w.pos++
	return nil
}

// WriteRawLittleEndian32 writes v as four little-endian bytes.
func (w *Writer) WriteRawLittleEndian32(v uint32) error {
	if w.limit-w.pos < LittleEndian32Size {
		return w.outOfSpace()
	}
	binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += LittleEndian32Size
	return nil
}

// WriteRawLittleEndian64 writes v as eight little-endian bytes.
func (w *Writer) WriteRawLittleEndian64(v uint64) error {
	if w.limit-w.pos < LittleEndian64Size {
		return w.outOfSpace()
	}
	binary.LittleEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += LittleEndian64Size
	return nil
}

// WriteDouble writes a double field.
func (w *Writer) WriteDouble(num Number, v float64) error {
	if err := w.WriteTag(num, Fixed64Type); err != nil {
		return err
	}
	return w.WriteDoubleNoTag(v)
}

// WriteFloat writes a float field.
func (w *Writer) WriteFloat(num Number, v float32) error {
	if err := w.WriteTag(num, Fixed32Type); err != nil {
		return err
	}
	return w.WriteFloatNoTag(v)
}

// WriteUint64 writes a uint64 field.
func (w *Writer) WriteUint64(num Number, v uint64) error {
	if err := w.WriteTag(num, VarintType); err != nil {
		return err
	}
	return w.WriteUint64NoTag(v)
}

// WriteInt64 writes an int64 field.
func (w *Writer) WriteInt64(num Number, v int64) error {
	if err := w.WriteTag(num, VarintType); err != nil {
		return err
	}
	return w.WriteInt64NoTag(v)
}

// WriteInt32 writes an int32 field.
func (w *Writer) WriteInt32(num Number, v int32) error {
	if err := w.WriteTag(num, VarintType); err != nil {
		return err
	}
	return w.WriteInt32NoTag(v)
}

// WriteFixed64 writes a fixed64 field.
func (w *Writer) WriteFixed64(num Number, v uint64) error {
	if err := w.WriteTag(num, Fixed64Type); err != nil {
		return err
	}
	return w.WriteFixed64NoTag(v)
}

// WriteFixed32 writes a fixed32 field.
func (w *Writer) WriteFixed32(num Number, v uint32) error {
	if err := w.WriteTag(num, Fixed32Type); err != nil {
		return err
	}
	return w.WriteFixed32NoTag(v)
}

// WriteBool writes a bool field.
func (w *Writer) WriteBool(num Number, v bool) error {
	if err := w.WriteTag(num, VarintType); err != nil {
		return err
	}
	return w.WriteBoolNoTag(v)
}

// WriteString writes a string field.
func (w *Writer) WriteString(num Number, v string) error {
	if err := w.WriteTag(num, BytesType); err != nil {
		return err
	}
	return w.WriteStringNoTag(v)
}

// WriteGroup writes m delimited by START_GROUP and END_GROUP tags.
func (w *Writer) WriteGroup(num Number, m Message) error {
	if err := w.WriteTag(num, StartGroupType); err != nil {
		return err
	}
	if err := w.WriteGroupNoTag(m); err != nil {
		return err
	}
	return w.WriteTag(num, EndGroupType)
}

// WriteMessage writes m as a length-delimited embedded message.
func (w *Writer) WriteMessage(num Number, m Message) error {
	if err := w.WriteTag(num, BytesType); err != nil {
		return err
	}
	return w.WriteMessageNoTag(m)
}

// WriteBytes writes a bytes field.
func (w *Writer) WriteBytes(num Number, v []byte) error {
	if err := w.WriteTag(num, BytesType); err != nil {
		return err
	}
	return w.WriteBytesNoTag(v)
}

// WriteUint32 writes a uint32 field.
func (w *Writer) WriteUint32(num Number, v uint32) error {
	if err := w.WriteTag(num, VarintType); err != nil {
		return err
	}
	return w.WriteUint32NoTag(v)
}

// WriteEnum writes an enum field.
func (w *Writer) WriteEnum(num Number, v int32) error {
	if err := w.WriteTag(num, VarintType); err != nil {
		return err
	}
	return w.WriteEnumNoTag(v)
}

// WriteSfixed32 writes an sfixed32 field.
func (w *Writer) WriteSfixed32(num Number, v int32) error {
	if err := w.WriteTag(num, Fixed32Type); err != nil {
		return err
	}
	return w.WriteSfixed32NoTag(v)
}

// WriteSfixed64 writes an sfixed64 field.
func (w *Writer) WriteSfixed64(num Number, v int64) error {
	if err := w.WriteTag(num, Fixed64Type); err != nil {
		return err
	}
	return w.WriteSfixed64NoTag(v)
}

// WriteSint32 writes a zigzag-encoded sint32 field.
func (w *Writer) WriteSint32(num Number, v int32) error {
	if err := w.WriteTag(num, VarintType); err != nil {
		return err
	}
	return w.WriteSint32NoTag(v)
}

// WriteSint64 writes a zigzag-encoded sint64 field.
func (w *Writer) WriteSint64(num Number, v int64) error {
	if err := w.WriteTag(num, VarintType); err != nil {
		return err
	}
	return w.WriteSint64NoTag(v)
}

func (w *Writer) WriteDoubleNoTag(v float64) error {
	return w.WriteRawLittleEndian64(math.Float64bits(v))
}

func (w *Writer) WriteFloatNoTag(v float32) error {
	return w.WriteRawLittleEndian32(math.Float32bits(v))
}

func (w *Writer) WriteUint64NoTag(v uint64) error {
	return w.WriteRawVarint64(v)
}

func (w *Writer) WriteInt64NoTag(v int64) error {
	return w.WriteRawVarint64(uint64(v))
}

// WriteInt32NoTag writes v as a varint. Negative values are sign-extended
// to ten bytes so that they read back as the same int64.
func (w *Writer) WriteInt32NoTag(v int32) error {
	if v >= 0 {
		return w.WriteRawVarint32(uint32(v))
	}
	return w.WriteRawVarint64(uint64(v))
}

func (w *Writer) WriteFixed64NoTag(v uint64) error {
	return w.WriteRawLittleEndian64(v)
}

func (w *Writer) WriteFixed32NoTag(v uint32) error {
	return w.WriteRawLittleEndian32(v)
}

func (w *Writer) WriteBoolNoTag(v bool) error {
	if v {
		return w.WriteRawByte(1)
	}
	return w.WriteRawByte(0)
}

// WriteStringNoTag writes v as length-prefixed UTF-8. Bytes of v that are
// not valid UTF-8 are written as U+FFFD, and the length prefix counts the
// replaced form.
func (w *Writer) WriteStringNoTag(v string) error {
	n := strs.EncodedLen(v)
	if err := w.WriteRawVarint32(uint32(n)); err != nil {
		return err
	}
	if w.limit-w.pos < n {
		return w.outOfSpace()
	}
	w.pos += strs.Encode(w.buf[w.pos:w.pos+n], v)
	return nil
}

// WriteGroupNoTag writes the fields of m without the group delimiters.
func (w *Writer) WriteGroupNoTag(m Message) error {
	return m.WriteTo(w)
}

// WriteMessageNoTag writes m prefixed by its cached size.
func (w *Writer) WriteMessageNoTag(m Message) error {
	if err := w.WriteRawVarint32(uint32(m.CachedSize())); err != nil {
		return err
	}
	return m.WriteTo(w)
}

func (w *Writer) WriteBytesNoTag(v []byte) error {
	if err := w.WriteRawVarint32(uint32(len(v))); err != nil {
		return err
	}
	return w.WriteRawBytes(v)
}

func (w *Writer) WriteUint32NoTag(v uint32) error {
	return w.WriteRawVarint32(v)
}

// WriteEnumNoTag writes v with the int32 encoding.
func (w *Writer) WriteEnumNoTag(v int32) error {
	return w.WriteInt32NoTag(v)
}

func (w *Writer) WriteSfixed32NoTag(v int32) error {
	return w.WriteRawLittleEndian32(uint32(v))
}

func (w *Writer) WriteSfixed64NoTag(v int64) error {
	return w.WriteRawLittleEndian64(uint64(v))
}

func (w *Writer) WriteSint32NoTag(v int32) error {
	return w.WriteRawVarint32(EncodeZigZag32(v))
}

func (w *Writer) WriteSint64NoTag(v int64) error {
	return w.WriteRawVarint64(EncodeZigZag64(v))
}

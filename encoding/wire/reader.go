// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

const (
	// DefaultRecursionLimit bounds the nesting of messages and groups.
	DefaultRecursionLimit = 64
	// DefaultSizeLimit bounds the number of bytes a Reader will consume.
	DefaultSizeLimit = 64 << 20
)

// Reader decodes wire-format primitives from an in-memory byte range.
//
// All positions held internally are absolute indexes into buf.
// Position and the arguments of RewindToPosition and Data are relative to
// the start of the range the Reader was created over.
//
// The invariant start <= pos <= bufferSize <= end holds at all times,
// where bufferSize is the end of the bytes currently visible to reads:
// the smallest of end, the pushed limit, and the size ceiling.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	buf   []byte
	start int
	end   int
	pos   int

	bufferSize           int
	bufferSizeAfterLimit int
	currentLimit         int

	lastTag uint32

	recursionDepth int
	recursionLimit int

	sizeLimit int
	sizeBase  int
}

// NewReader returns a Reader over all of b. The bytes are not copied and must
// not be modified while the Reader is in use.
func NewReader(b []byte) *Reader {
	return NewReaderAt(b, 0, len(b))
}

// NewReaderAt returns a Reader over b[off:off+n].
// It panics if the range does not lie within b.
func NewReaderAt(b []byte, off, n int) *Reader {
	if off < 0 || n < 0 || n > len(b)-off {
		panic(fmt.Sprintf("wire: invalid reader range [%d:%d+%d] of %d bytes", off, off, n, len(b)))
	}
	r := &Reader{
		buf:            b,
		start:          off,
		end:            off + n,
		pos:            off,
		currentLimit:   unbounded,
		recursionLimit: DefaultRecursionLimit,
		sizeLimit:      DefaultSizeLimit,
		sizeBase:       off,
	}
	r.recomputeBufferSize()
	return r
}

func (r *Reader) recomputeBufferSize() {
	visible := r.end
	if r.currentLimit < visible {
		visible = r.currentLimit
	}
	if r.sizeLimit < visible-r.sizeBase {
		visible = r.sizeBase + r.sizeLimit
	}
	if visible < r.pos {
		visible = r.pos
	}
	r.bufferSize = visible
	r.bufferSizeAfterLimit = r.end - visible
}

// sizeLimited reports whether the size ceiling, rather than the data or a
// pushed limit, is what ends the visible range.
func (r *Reader) sizeLimited() bool {
	hard := r.end
	if r.currentLimit < hard {
		hard = r.currentLimit
	}
	return r.sizeLimit < hard-r.sizeBase
}

// errShort is the error for a read that ran past the visible range.
func (r *Reader) errShort() error {
	if r.sizeLimited() {
		return ErrSizeLimitExceeded
	}
	return ErrTruncated
}

// ReadTag reads a field tag. It returns 0 at the end of input or at the end of
// the current limit, after which LastTag also reports 0.
func (r *Reader) ReadTag() (uint32, error) {
	if r.IsAtEnd() {
		if r.sizeLimited() {
			return 0, ErrSizeLimitExceeded
		}
		r.lastTag = 0
		return 0, nil
	}
	v, err := r.ReadRawVarint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, ErrInvalidTag
	}
	r.lastTag = uint32(v)
	if TagFieldNumber(r.lastTag) == 0 {
		return 0, ErrInvalidTag
	}
	return r.lastTag, nil
}

// LastTag returns the tag returned by the most recent call to ReadTag.
func (r *Reader) LastTag() uint32 {
	return r.lastTag
}

// CheckLastTagWas verifies that the most recent tag read equals value.
// It is used after a message or group has been consumed to confirm that it
// ended where expected.
func (r *Reader) CheckLastTagWas(value uint32) error {
	if r.lastTag != value {
		return ErrInvalidEndTag
	}
	return nil
}

// SkipField consumes the payload of the field whose tag was just read.
// It reports false, consuming nothing, if tag is an END_GROUP tag.
func (r *Reader) SkipField(tag uint32) (bool, error) {
	switch TagWireType(tag) {
	case VarintType:
		_, err := r.ReadInt32()
		return err == nil, err
	case Fixed64Type:
		_, err := r.ReadRawLittleEndian64()
		return err == nil, err
	case BytesType:
		n, err := r.ReadLength()
		if err != nil {
			return false, err
		}
		if err := r.SkipRawBytes(n); err != nil {
			return false, err
		}
		return true, nil
	case StartGroupType:
		if err := r.skipGroup(TagFieldNumber(tag)); err != nil {
			return false, err
		}
		return true, nil
	case EndGroupType:
		return false, nil
	case Fixed32Type:
		_, err := r.ReadRawLittleEndian32()
		return err == nil, err
	}
	return false, ErrInvalidWireType
}

func (r *Reader) skipGroup(num Number) error {
	if r.recursionDepth >= r.recursionLimit {
		return ErrRecursionLimitExceeded
	}
	r.recursionDepth++
	if err := r.SkipMessage(); err != nil {
		return err
	}
	if err := r.CheckLastTagWas(MakeTag(num, EndGroupType)); err != nil {
		return err
	}
	r.recursionDepth--
	return nil
}

// SkipMessage discards fields until the end of input, the end of the current
// limit, or an END_GROUP tag.
func (r *Reader) SkipMessage() error {
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		if tag == 0 {
			return nil
		}
		ok, err := r.SkipField(tag)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// ReadDouble reads a double field value.
func (r *Reader) ReadDouble() (float64, error) {
	v, err := r.ReadRawLittleEndian64()
	return math.Float64frombits(v), err
}

// ReadFloat reads a float field value.
func (r *Reader) ReadFloat() (float32, error) {
	v, err := r.ReadRawLittleEndian32()
	return math.Float32frombits(v), err
}

// ReadUint64 reads a uint64 field value.
func (r *Reader) ReadUint64() (uint64, error) {
	return r.ReadRawVarint64()
}

// ReadInt64 reads an int64 field value.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadRawVarint64()
	return int64(v), err
}

// ReadInt32 reads an int32 field value. Values encoded as sign-extended
// ten-byte varints are accepted and truncated.
func (r *Reader) ReadInt32() (int32, error) {
	return r.ReadRawVarint32()
}

// ReadFixed64 reads a fixed64 field value.
func (r *Reader) ReadFixed64() (uint64, error) {
	return r.ReadRawLittleEndian64()
}

// ReadFixed32 reads a fixed32 field value.
func (r *Reader) ReadFixed32() (uint32, error) {
	return r.ReadRawLittleEndian32()
}

// ReadBool reads a bool field value. Any non-zero varint is true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadRawVarint32()
	return v != 0, err
}

// ReadString reads a string field value. It fails with ErrInvalidUTF8 if the
// payload is not valid UTF-8.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadLength()
	if err != nil {
		return "", err
	}
	var s string
	if n > 0 && n <= r.bufferSize-r.pos {
		s = string(r.buf[r.pos : r.pos+n])
		r.pos += n
	} else {
		b, err := r.ReadRawBytes(n)
		if err != nil {
			return "", err
		}
		s = string(b)
	}
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	return s, nil
}

// ReadGroup reads a group into m. The START_GROUP tag for num must already
// have been consumed.
func (r *Reader) ReadGroup(m Message, num Number) error {
	if r.recursionDepth >= r.recursionLimit {
		return ErrRecursionLimitExceeded
	}
	r.recursionDepth++
	if err := m.MergeFrom(r); err != nil {
		return err
	}
	if err := r.CheckLastTagWas(MakeTag(num, EndGroupType)); err != nil {
		return err
	}
	r.recursionDepth--
	return nil
}

// ReadMessage reads a length-delimited embedded message into m.
func (r *Reader) ReadMessage(m Message) error {
	n, err := r.ReadLength()
	if err != nil {
		return err
	}
	if r.recursionDepth >= r.recursionLimit {
		return ErrRecursionLimitExceeded
	}
	old, err := r.PushLimit(n)
	if err != nil {
		return err
	}
	r.recursionDepth++
	if err := m.MergeFrom(r); err != nil {
		return err
	}
	if err := r.CheckLastTagWas(0); err != nil {
		return err
	}
	r.recursionDepth--
	r.PopLimit(old)
	return nil
}

// ReadBytes reads a bytes field value. The result never aliases the input.
// A zero-length value is returned as EmptyBytes.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return EmptyBytes, nil
	}
	if n > 0 && n <= r.bufferSize-r.pos {
		b := make([]byte, n)
		copy(b, r.buf[r.pos:])
		r.pos += n
		return b, nil
	}
	return r.ReadRawBytes(n)
}

// ReadUint32 reads a uint32 field value.
func (r *Reader) ReadUint32() (uint32, error) {
	v, err := r.ReadRawVarint32()
	return uint32(v), err
}

// ReadEnum reads an enum field value.
func (r *Reader) ReadEnum() (int32, error) {
	return r.ReadRawVarint32()
}

// ReadSfixed32 reads an sfixed32 field value.
func (r *Reader) ReadSfixed32() (int32, error) {
	v, err := r.ReadRawLittleEndian32()
	return int32(v), err
}

// ReadSfixed64 reads an sfixed64 field value.
func (r *Reader) ReadSfixed64() (int64, error) {
	v, err := r.ReadRawLittleEndian64()
	return int64(v), err
}

// ReadSint32 reads a zigzag-encoded sint32 field value.
func (r *Reader) ReadSint32() (int32, error) {
	v, err := r.ReadRawVarint32()
	return DecodeZigZag32(uint32(v)), err
}

// ReadSint64 reads a zigzag-encoded sint64 field value.
func (r *Reader) ReadSint64() (int64, error) {
	v, err := r.ReadRawVarint64()
	return DecodeZigZag64(v), err
}

// ReadRawVarint32 reads a varint and returns its low 32 bits.
// Up to ten bytes are accepted so that negative int32 values encoded as
// sign-extended 64-bit varints decode correctly.
func (r *Reader) ReadRawVarint32() (int32, error) {
	if r.pos < r.bufferSize {
		if b := r.buf[r.pos]; b < 0x80 {
			r.pos++
			return int32(b), nil
		}
	}
	var v uint32
	for shift := uint(0); shift < 35; shift += 7 {
		b, err := r.ReadRawByte()
		if err != nil {
			return 0, err
		}
		v |= uint32(b&0x7f) << shift
		if b < 0x80 {
			return int32(v), nil
		}
	}
	// Discard the upper 32 bits.
	for i := 0; i < 5; i++ {
		b, err := r.ReadRawByte()
		if err != nil {
			return 0, err
		}
		if i == 4 && b > 1 {
			return 0, ErrMalformedVarint
		}
		if b < 0x80 {
			return int32(v), nil
		}
	}
	return 0, ErrMalformedVarint
}

// ReadRawVarint64 reads a varint of at most ten bytes. A tenth byte above 1
// would overflow 64 bits and is malformed.
func (r *Reader) ReadRawVarint64() (uint64, error) {
	var v uint64
	for shift := uint(0); shift < 64; shift += 7 {
		b, err := r.ReadRawByte()
		if err != nil {
			return 0, err
		}
		if shift == 63 && b > 1 {
			return 0, ErrMalformedVarint
		}
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, nil
		}
	}
	return 0, ErrMalformedVarint
}

// ReadLength reads the byte count of a length-delimited value.
// A count that is negative as a 32-bit integer fails with ErrNegativeSize;
// a larger count cannot fit in the input and fails with ErrTruncated.
func (r *Reader) ReadLength() (int, error) {
	v, err := r.ReadRawVarint64()
	if err != nil {
		return 0, err
	}
	switch {
	case int32(v) < 0 || int64(v) < 0:
		return 0, ErrNegativeSize
	case v > math.MaxInt32:
		return 0, r.errShort()
	}
	return int(v), nil
}

// ReadRawLittleEndian32 reads four bytes as a little-endian integer.
func (r *Reader) ReadRawLittleEndian32() (uint32, error) {
	if r.bufferSize-r.pos < LittleEndian32Size {
		r.pos = r.bufferSize
		return 0, r.errShort()
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += LittleEndian32Size
	return v, nil
}

// ReadRawLittleEndian64 reads eight bytes as a little-endian integer.
func (r *Reader) ReadRawLittleEndian64() (uint64, error) {
	if r.bufferSize-r.pos < LittleEndian64Size {
		r.pos = r.bufferSize
		return 0, r.errShort()
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += LittleEndian64Size
	return v, nil
}

// ReadRawByte reads a single byte.
func (r *Reader) ReadRawByte() (byte, error) {
	if r.pos == r.bufferSize {
		return 0, r.errShort()
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadRawBytes reads a fixed number of bytes into a new slice.
func (r *Reader) ReadRawBytes(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	if size <= r.bufferSize-r.pos {
		b := make([]byte, size)
		copy(b, r.buf[r.pos:])
		r.pos += size
		return b, nil
	}
	return nil, r.overrun(size)
}

// SkipRawBytes discards size bytes.
func (r *Reader) SkipRawBytes(size int) error {
	if size < 0 {
		return ErrNegativeSize
	}
	if size <= r.bufferSize-r.pos {
		r.pos += size
		return nil
	}
	return r.overrun(size)
}

// overrun consumes what remains visible and reports why size bytes could
// not be read.
func (r *Reader) overrun(size int) error {
	beyondLimit := size > r.currentLimit-r.pos
	r.pos = r.bufferSize
	if beyondLimit {
		return ErrTruncated
	}
	return r.errShort()
}

// PushLimit restricts reads to the next byteLimit bytes, as when entering an
// embedded message. It returns the previous limit, which must be passed to
// the matching PopLimit.
//
// A limit reaching past the enclosing limit or past the end of the data
// is ErrTruncated; one reaching past the size ceiling is
// ErrSizeLimitExceeded.
func (r *Reader) PushLimit(byteLimit int) (int, error) {
	if byteLimit < 0 {
		return 0, ErrNegativeSize
	}
	if byteLimit > r.currentLimit-r.pos || byteLimit > r.end-r.pos {
		return 0, ErrTruncated
	}
	limit := r.pos + byteLimit
	if r.sizeLimit < limit-r.sizeBase {
		return 0, ErrSizeLimitExceeded
	}
	old := r.currentLimit
	r.currentLimit = limit
	r.recomputeBufferSize()
	return old, nil
}

// PopLimit restores the limit returned by PushLimit.
func (r *Reader) PopLimit(oldLimit int) {
	r.currentLimit = oldLimit
	r.recomputeBufferSize()
}

// BytesUntilLimit returns the number of bytes left before the current limit,
// or -1 if no limit is in effect.
func (r *Reader) BytesUntilLimit() int {
	if r.currentLimit == unbounded {
		return -1
	}
	return r.currentLimit - r.pos
}

// IsAtEnd reports whether no more bytes are visible, because either the
// input or the current limit has been reached.
func (r *Reader) IsAtEnd() bool {
	return r.pos == r.bufferSize
}

// Position returns the number of bytes consumed since the start of the range.
func (r *Reader) Position() int {
	return r.pos - r.start
}

// Data returns a copy of n bytes starting at the relative offset off.
// It panics if the range lies outside the input.
func (r *Reader) Data(off, n int) []byte {
	if n == 0 {
		return EmptyBytes
	}
	if off < 0 || n < 0 || n > r.end-r.start-off {
		panic(fmt.Sprintf("wire: invalid data range [%d:%d+%d]", off, off, n))
	}
	b := make([]byte, n)
	copy(b, r.buf[r.start+off:])
	return b
}

// RewindToPosition moves back to a relative position previously returned by
// Position. Moving forward is not permitted.
func (r *Reader) RewindToPosition(pos int) {
	if pos > r.pos-r.start {
		panic(fmt.Sprintf("wire: position %d is beyond current %d", pos, r.pos-r.start))
	}
	if pos < 0 {
		panic(fmt.Sprintf("wire: bad position %d", pos))
	}
	r.pos = r.start + pos
}

// SetRecursionLimit sets the maximum nesting depth and returns the previous
// value. It panics if limit is negative.
func (r *Reader) SetRecursionLimit(limit int) int {
	if limit < 0 {
		panic(fmt.Sprintf("wire: recursion limit cannot be negative: %d", limit))
	}
	old := r.recursionLimit
	r.recursionLimit = limit
	return old
}

// SetSizeLimit sets the maximum number of bytes read since the last call to
// ResetSizeCounter and returns the previous value. It panics if limit is
// negative.
func (r *Reader) SetSizeLimit(limit int) int {
	if limit < 0 {
		panic(fmt.Sprintf("wire: size limit cannot be negative: %d", limit))
	}
	old := r.sizeLimit
	r.sizeLimit = limit
	r.recomputeBufferSize()
	return old
}

// ResetSizeCounter restarts size limit accounting at the current position.
func (r *Reader) ResetSizeCounter() {
	r.sizeBase = r.pos
	r.recomputeBufferSize()
}

// ReadPrimitiveField reads one value of a scalar kind and returns it as
// the Go type generated code uses for that kind:
//
//	double: float64     float: float32       bool: bool
//	int64, sint64, sfixed64: int64           uint64, fixed64: uint64
//	int32, sint32, sfixed32, enum: int32     uint32, fixed32: uint32
//	string: string      bytes: []byte
//
// It panics for message and group kinds.
func (r *Reader) ReadPrimitiveField(k Kind) (any, error) {
	switch k {
	case DoubleKind:
		return r.ReadDouble()
	case FloatKind:
		return r.ReadFloat()
	case Int64Kind:
		return r.ReadInt64()
	case Uint64Kind:
		return r.ReadUint64()
	case Int32Kind:
		return r.ReadInt32()
	case Fixed64Kind:
		return r.ReadFixed64()
	case Fixed32Kind:
		return r.ReadFixed32()
	case BoolKind:
		return r.ReadBool()
	case StringKind:
		return r.ReadString()
	case BytesKind:
		return r.ReadBytes()
	case Uint32Kind:
		return r.ReadUint32()
	case EnumKind:
		return r.ReadEnum()
	case Sfixed32Kind:
		return r.ReadSfixed32()
	case Sfixed64Kind:
		return r.ReadSfixed64()
	case Sint32Kind:
		return r.ReadSint32()
	case Sint64Kind:
		return r.ReadSint64()
	}
	panic(fmt.Sprintf("wire: not a primitive kind: %v", k))
}

// RepeatedFieldLength counts the consecutive occurrences of tag starting at
// the current field, whose tag has just been read. The Reader is left where
// it started, so generated code can size a slice before reading into it.
func RepeatedFieldLength(r *Reader, tag uint32) (int, error) {
	n := 1
	start := r.Position()
	if _, err := r.SkipField(tag); err != nil {
		return 0, err
	}
	for {
		next, err := r.ReadTag()
		if err != nil {
			return 0, err
		}
		if next != tag {
			break
		}
		if _, err := r.SkipField(tag); err != nil {
			return 0, err
		}
		n++
	}
	r.RewindToPosition(start)
	return n, nil
}

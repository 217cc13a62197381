// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire reads and writes the raw protocol buffer wire encoding.
//
// A Reader decodes primitives from an in-memory byte range and guards
// against adversarial input with a size limit and a recursion limit.
// A Writer encodes primitives into a fixed-capacity destination that callers
// pre-size exactly with the Size functions. Generated message types call
// into both; see package proto for whole-message helpers.
package wire

import "math"

// Number represents the field number.
type Number int32

const (
	MinValidNumber      Number = 1
	FirstReservedNumber Number = 19000
	LastReservedNumber  Number = 19999
	MaxValidNumber      Number = 1<<29 - 1
)

// IsValid reports whether the field number is semantically valid.
func (n Number) IsValid() bool {
	return MinValidNumber <= n && n <= MaxValidNumber
}

// Type represents the wire type.
type Type int8

const (
	VarintType     Type = 0
	Fixed64Type    Type = 1
	BytesType      Type = 2
	StartGroupType Type = 3
	EndGroupType   Type = 4
	Fixed32Type    Type = 5
)

// IsValid reports whether t is one of the six defined wire types.
func (t Type) IsValid() bool {
	return VarintType <= t && t <= Fixed32Type
}

func (t Type) String() string {
	switch t {
	case VarintType:
		return "varint"
	case Fixed64Type:
		return "fixed64"
	case BytesType:
		return "bytes"
	case StartGroupType:
		return "start group"
	case EndGroupType:
		return "end group"
	case Fixed32Type:
		return "fixed32"
	}
	return "<unknown wire type>"
}

const (
	tagTypeBits = 3
	tagTypeMask = 1<<tagTypeBits - 1
)

// MakeTag packs a field number and wire type into a tag.
func MakeTag(num Number, typ Type) uint32 {
	return uint32(num)<<tagTypeBits | uint32(typ)&tagTypeMask
}

// TagWireType returns the wire type stored in the low bits of tag.
func TagWireType(tag uint32) Type {
	return Type(tag & tagTypeMask)
}

// TagFieldNumber returns the field number stored in tag.
func TagFieldNumber(tag uint32) Number {
	return Number(tag >> tagTypeBits)
}

// EncodeZigZag32 maps a signed 32-bit integer onto an unsigned one so that
// values of small magnitude have small encodings.
//
//	Input:  {…, -3, -2, -1,  0, +1, +2, +3, …}
//	Output: {…,  5,  3,  1,  0,  2,  4,  6, …}
func EncodeZigZag32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// DecodeZigZag32 reverses EncodeZigZag32.
func DecodeZigZag32(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1)
}

// EncodeZigZag64 is the 64-bit form of EncodeZigZag32.
func EncodeZigZag64(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// DecodeZigZag64 reverses EncodeZigZag64.
func DecodeZigZag64(n uint64) int64 {
	return int64(n>>1) ^ -int64(n&1)
}

// EmptyBytes is returned by the Reader for zero-length bytes fields.
// It is non-nil so that presence survives a round trip; it must not be
// written to.
var EmptyBytes = []byte{}

// unbounded is the currentLimit of a Reader with no pushed limit.
const unbounded = math.MaxInt

const (
	// LittleEndian32Size is the encoded size of a fixed32, sfixed32 or float.
	LittleEndian32Size = 4
	// LittleEndian64Size is the encoded size of a fixed64, sfixed64 or double.
	LittleEndian64Size = 8
)

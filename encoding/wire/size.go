// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"math/bits"

	"github.com/infiniteloopcloud/protonano/internal/strs"
)

// SizeRawVarint64 returns the encoded size of a varint.
func SizeRawVarint64(v uint64) int {
	// This computes 1 + (bits.Len64(v)-1)/7.
	// 9/64 is a good enough approximation of 1/7
	return int(9*uint32(bits.Len64(v))+64) / 64
}

// SizeRawVarint32 returns the encoded size of a varint holding v.
func SizeRawVarint32(v uint32) int {
	return SizeRawVarint64(uint64(v))
}

// SizeTag returns the encoded size of a tag for field num.
// The wire type does not affect the size.
func SizeTag(num Number) int {
	return SizeRawVarint32(MakeTag(num, 0))
}

func SizeDoubleNoTag(float64) int  { return LittleEndian64Size }
func SizeFloatNoTag(float32) int   { return LittleEndian32Size }
func SizeFixed64NoTag(uint64) int  { return LittleEndian64Size }
func SizeFixed32NoTag(uint32) int  { return LittleEndian32Size }
func SizeSfixed32NoTag(int32) int  { return LittleEndian32Size }
func SizeSfixed64NoTag(int64) int  { return LittleEndian64Size }
func SizeBoolNoTag(bool) int       { return 1 }
func SizeUint64NoTag(v uint64) int { return SizeRawVarint64(v) }
func SizeInt64NoTag(v int64) int   { return SizeRawVarint64(uint64(v)) }
func SizeUint32NoTag(v uint32) int { return SizeRawVarint32(v) }
func SizeSint32NoTag(v int32) int  { return SizeRawVarint32(EncodeZigZag32(v)) }
func SizeSint64NoTag(v int64) int  { return SizeRawVarint64(EncodeZigZag64(v)) }
func SizeEnumNoTag(v int32) int    { return SizeInt32NoTag(v) }

// SizeInt32NoTag returns the encoded size of an int32 value.
// Negative values always take ten bytes.
func SizeInt32NoTag(v int32) int {
	if v >= 0 {
		return SizeRawVarint32(uint32(v))
	}
	return 10
}

// SizeStringNoTag returns the encoded size of a string value, including the
// length prefix. Invalid UTF-8 is sized as it will be written.
func SizeStringNoTag(v string) int {
	n := strs.EncodedLen(v)
	return SizeRawVarint32(uint32(n)) + n
}

// SizeBytesNoTag returns the encoded size of a bytes value, including the
// length prefix.
func SizeBytesNoTag(v []byte) int {
	return SizeRawVarint32(uint32(len(v))) + len(v)
}

// SizeGroupNoTag returns the encoded size of the fields of m.
func SizeGroupNoTag(m Message) int {
	return m.SerializedSize()
}

// SizeMessageNoTag returns the encoded size of m including its length prefix.
func SizeMessageNoTag(m Message) int {
	n := m.SerializedSize()
	return SizeRawVarint32(uint32(n)) + n
}

func SizeDouble(num Number, v float64) int  { return SizeTag(num) + SizeDoubleNoTag(v) }
func SizeFloat(num Number, v float32) int   { return SizeTag(num) + SizeFloatNoTag(v) }
func SizeUint64(num Number, v uint64) int   { return SizeTag(num) + SizeUint64NoTag(v) }
func SizeInt64(num Number, v int64) int     { return SizeTag(num) + SizeInt64NoTag(v) }
func SizeInt32(num Number, v int32) int     { return SizeTag(num) + SizeInt32NoTag(v) }
func SizeFixed64(num Number, v uint64) int  { return SizeTag(num) + SizeFixed64NoTag(v) }
func SizeFixed32(num Number, v uint32) int  { return SizeTag(num) + SizeFixed32NoTag(v) }
func SizeBool(num Number, v bool) int       { return SizeTag(num) + SizeBoolNoTag(v) }
func SizeString(num Number, v string) int   { return SizeTag(num) + SizeStringNoTag(v) }
func SizeBytes(num Number, v []byte) int    { return SizeTag(num) + SizeBytesNoTag(v) }
func SizeUint32(num Number, v uint32) int   { return SizeTag(num) + SizeUint32NoTag(v) }
func SizeEnum(num Number, v int32) int      { return SizeTag(num) + SizeEnumNoTag(v) }
func SizeSfixed32(num Number, v int32) int  { return SizeTag(num) + SizeSfixed32NoTag(v) }
func SizeSfixed64(num Number, v int64) int  { return SizeTag(num) + SizeSfixed64NoTag(v) }
func SizeSint32(num Number, v int32) int    { return SizeTag(num) + SizeSint32NoTag(v) }
func SizeSint64(num Number, v int64) int    { return SizeTag(num) + SizeSint64NoTag(v) }
func SizeMessage(num Number, m Message) int { return SizeTag(num) + SizeMessageNoTag(m) }

// SizeGroup returns the encoded size of a group, including both delimiting
// tags.
func SizeGroup(num Number, m Message) int {
	return 2*SizeTag(num) + SizeGroupNoTag(m)
}

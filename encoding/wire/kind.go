// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "fmt"

// Kind indicates the declared type of a field.
//
// The numbering matches the field types of descriptor.proto so that
// generated code can pass them through unchanged.
type Kind int8

const (
	DoubleKind   Kind = 1
	FloatKind    Kind = 2
	Int64Kind    Kind = 3
	Uint64Kind   Kind = 4
	Int32Kind    Kind = 5
	Fixed64Kind  Kind = 6
	Fixed32Kind  Kind = 7
	BoolKind     Kind = 8
	StringKind   Kind = 9
	GroupKind    Kind = 10
	MessageKind  Kind = 11
	BytesKind    Kind = 12
	Uint32Kind   Kind = 13
	EnumKind     Kind = 14
	Sfixed32Kind Kind = 15
	Sfixed64Kind Kind = 16
	Sint32Kind   Kind = 17
	Sint64Kind   Kind = 18
)

var kindNames = [...]string{
	DoubleKind:   "double",
	FloatKind:    "float",
	Int64Kind:    "int64",
	Uint64Kind:   "uint64",
	Int32Kind:    "int32",
	Fixed64Kind:  "fixed64",
	Fixed32Kind:  "fixed32",
	BoolKind:     "bool",
	StringKind:   "string",
	GroupKind:    "group",
	MessageKind:  "message",
	BytesKind:    "bytes",
	Uint32Kind:   "uint32",
	EnumKind:     "enum",
	Sfixed32Kind: "sfixed32",
	Sfixed64Kind: "sfixed64",
	Sint32Kind:   "sint32",
	Sint64Kind:   "sint64",
}

// IsValid reports whether k is a defined kind.
func (k Kind) IsValid() bool {
	return DoubleKind <= k && k <= Sint64Kind
}

func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("<unknown:%d>", k)
}

// WireType returns the wire type used to encode a single value of kind k.
func (k Kind) WireType() Type {
	switch k {
	case BoolKind, EnumKind, Int32Kind, Sint32Kind, Uint32Kind,
		Int64Kind, Sint64Kind, Uint64Kind:
		return VarintType
	case Fixed32Kind, Sfixed32Kind, FloatKind:
		return Fixed32Type
	case Fixed64Kind, Sfixed64Kind, DoubleKind:
		return Fixed64Type
	case StringKind, BytesKind, MessageKind:
		return BytesType
	case GroupKind:
		return StartGroupType
	}
	panic(fmt.Sprintf("invalid kind: %v", k))
}

// IsPackable reports whether repeated values of kind k may use the packed
// encoding.
func (k Kind) IsPackable() bool {
	switch k {
	case StringKind, BytesKind, MessageKind, GroupKind:
		return false
	}
	return k.IsValid()
}

// IsMessage reports whether k holds an embedded message.
func (k Kind) IsMessage() bool {
	return k == MessageKind || k == GroupKind
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldmap

import (
	"bytes"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
)

// UnknownField is a single occurrence of a field that has not been decoded.
// Bytes holds the wire encoding that followed Tag, verbatim: for a group it
// runs up to and including the END_GROUP tag.
//
// An UnknownField is immutable once stored.
type UnknownField struct {
	Tag   uint32
	Bytes []byte
}

// Size returns the encoded size of f including its tag.
func (f UnknownField) Size() int {
	return wire.SizeRawVarint32(f.Tag) + len(f.Bytes)
}

// WriteTo writes the tag followed by the raw bytes.
func (f UnknownField) WriteTo(w *wire.Writer) error {
	if err := w.WriteRawVarint32(f.Tag); err != nil {
		return err
	}
	return w.WriteRawBytes(f.Bytes)
}

// Equal reports whether f and o are the same occurrence.
func (f UnknownField) Equal(o UnknownField) bool {
	return f.Tag == o.Tag && bytes.Equal(f.Bytes, o.Bytes)
}

// Codec decodes, encodes and compares the values stored in a claimed Slot.
// It is implemented by extension descriptors.
type Codec interface {
	// ID identifies the codec. Two codecs with the same ID are the same.
	ID() uint64

	// Size returns the encoded size of v, tags included.
	Size(v any) int

	// Write encodes v, tags included.
	Write(w *wire.Writer, v any) error

	// Equal reports whether two decoded values are equal.
	Equal(a, b any) bool

	// Clone returns a deep copy of v.
	Clone(v any) any

	// MergeUnknown decodes f and combines it with v, which may be the zero
	// value for the codec. Singular codecs keep the last occurrence;
	// repeated codecs append.
	MergeUnknown(v any, f UnknownField) (any, error)
}

// Slot holds everything known about one field number: either the raw
// occurrences seen on the wire or a value decoded by a Codec, never both.
//
// The transition from raw to decoded is one way. Once a Slot is claimed by
// a Codec, later occurrences are decoded and merged into the value as they
// arrive.
type Slot struct {
	codec   Codec
	value   any
	unknown []UnknownField
}

// NewSlot returns a Slot holding v, claimed by c.
func NewSlot(c Codec, v any) *Slot {
	return &Slot{codec: c, value: v}
}

// AddUnknown records another occurrence of the field.
func (s *Slot) AddUnknown(f UnknownField) error {
	if s.codec != nil {
		v, err := s.codec.MergeUnknown(s.value, f)
		if err != nil {
			return err
		}
		s.value = v
		return nil
	}
	s.unknown = append(s.unknown, f)
	return nil
}

// Unknown returns the raw occurrences, in wire order.
// It is empty once the Slot has been claimed.
func (s *Slot) Unknown() []UnknownField {
	return s.unknown
}

// Codec returns the codec that claimed the Slot, or nil.
func (s *Slot) Codec() Codec {
	return s.codec
}

// Value returns the decoded value, or nil if the Slot is unclaimed.
func (s *Slot) Value() any {
	return s.value
}

// SetValue claims the Slot for c and stores v, discarding raw occurrences.
func (s *Slot) SetValue(c Codec, v any) {
	s.codec = c
	s.value = v
	s.unknown = nil
}

// Size returns the encoded size of every occurrence held.
func (s *Slot) Size() int {
	if s.codec != nil {
		return s.codec.Size(s.value)
	}
	n := 0
	for _, f := range s.unknown {
		n += f.Size()
	}
	return n
}

// WriteTo writes every occurrence held, in order.
func (s *Slot) WriteTo(w *wire.Writer) error {
	if s.codec != nil {
		return s.codec.Write(w, s.value)
	}
	for _, f := range s.unknown {
		if err := f.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// Marshal returns the encoding of the Slot.
func (s *Slot) Marshal() ([]byte, error) {
	b := make([]byte, s.Size())
	w := wire.NewWriter(b)
	if err := s.WriteTo(w); err != nil {
		return nil, err
	}
	if err := w.CheckNoSpaceLeft(); err != nil {
		return nil, err
	}
	return b, nil
}

// Equal reports whether s and o hold the same field contents.
//
// Two claimed slots are equal only if claimed by the same codec and their
// values are equal. Two raw slots are compared occurrence by occurrence.
// Otherwise the encodings are compared.
func (s *Slot) Equal(o *Slot) bool {
	switch {
	case s.codec != nil && o.codec != nil:
		return s.codec.ID() == o.codec.ID() && s.codec.Equal(s.value, o.value)
	case s.codec == nil && o.codec == nil:
		if len(s.unknown) != len(o.unknown) {
			return false
		}
		for i := range s.unknown {
			if !s.unknown[i].Equal(o.unknown[i]) {
				return false
			}
		}
		return true
	}
	a, err := s.Marshal()
	if err != nil {
		return false
	}
	b, err := o.Marshal()
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// Clone returns a deep copy of s.
func (s *Slot) Clone() *Slot {
	if s.codec != nil {
		return &Slot{codec: s.codec, value: s.codec.Clone(s.value)}
	}
	c := &Slot{}
	if s.unknown != nil {
		c.unknown = append([]UnknownField(nil), s.unknown...)
	}
	return c
}

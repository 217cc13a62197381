// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"fmt"
	"sync/atomic"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/internal/fieldmap"
)

// Extension describes an extension field of messages of type M whose value
// has Go type T. Repeated extensions have a slice type T.
//
// Extensions are immutable and are only created by the Create functions,
// normally from package-level variables in generated code.
type Extension[M Extendable, T any] struct {
	kind     wire.Kind
	tag      uint32
	repeated bool
	id       uint64
	ops      extensionOps[T]
}

// extensionOps are the typed operations backing an Extension.
type extensionOps[T any] struct {
	size  func(v T) int
	write func(w *wire.Writer, v T) error
	merge func(v T, f fieldmap.UnknownField) (T, error)
	equal func(a, b T) bool
	clone func(v T) T
	empty func(v T) bool
}

var extensionIDs atomic.Uint64

func newExtension[M Extendable, T any](k wire.Kind, tag uint32, repeated bool, ops extensionOps[T]) *Extension[M, T] {
	return &Extension[M, T]{
		kind:     k,
		tag:      tag,
		repeated: repeated,
		id:       extensionIDs.Add(1),
		ops:      ops,
	}
}

// Kind returns the declared field type.
func (e *Extension[M, T]) Kind() wire.Kind { return e.kind }

// Tag returns the tag the extension is written with.
func (e *Extension[M, T]) Tag() uint32 { return e.tag }

// Number returns the field number.
func (e *Extension[M, T]) Number() wire.Number { return wire.TagFieldNumber(e.tag) }

// IsRepeated reports whether the extension holds a list of values.
func (e *Extension[M, T]) IsRepeated() bool { return e.repeated }

func (e *Extension[M, T]) String() string {
	label := "optional"
	if e.repeated {
		label = "repeated"
	}
	return fmt.Sprintf("extension %v %v = %d", label, e.kind, e.Number())
}

func checkTag(k wire.Kind, tag uint32) {
	if !wire.TagFieldNumber(tag).IsValid() {
		panic(fmt.Sprintf("proto: invalid extension tag %d", tag))
	}
	if got, want := wire.TagWireType(tag), k.WireType(); got != want {
		panic(fmt.Sprintf("proto: extension tag %d has wire type %v, %v fields use %v", tag, got, k, want))
	}
}

// CreatePrimitiveTyped returns a singular extension of a scalar kind.
// T must be the Go type for k as documented by wire.Reader.ReadPrimitiveField.
// It panics if T does not match k or tag does not match k.
func CreatePrimitiveTyped[M Extendable, T any](k wire.Kind, tag uint32) *Extension[M, T] {
	checkScalarType[T](k)
	checkTag(k, tag)
	el := elemOps[T]{kind: k, num: wire.TagFieldNumber(tag)}
	ops := singularOps(el)
	if k == wire.BytesKind {
		ops.empty = func(v T) bool { return any(v).([]byte) == nil }
	}
	return newExtension[M](k, tag, false, ops)
}

// CreateMessageTyped returns a singular extension of message or group kind.
// newMessage allocates an empty value for decoding.
// Setting a nil message clears the extension.
func CreateMessageTyped[M Extendable, T Message](k wire.Kind, newMessage func() T, tag uint32) *Extension[M, T] {
	if !k.IsMessage() {
		panic(fmt.Sprintf("proto: CreateMessageTyped with %v kind", k))
	}
	checkTag(k, tag)
	el := elemOps[T]{kind: k, num: wire.TagFieldNumber(tag), newMessage: func() Message { return newMessage() }}
	ops := singularOps(el)
	ops.empty = isNil[T]
	return newExtension[M](k, tag, false, ops)
}

// CreateRepeatedPrimitiveTyped returns a repeated extension of a scalar kind
// holding a []E. tag must be either nonPackedTag or packedTag and selects the
// form the values are written in; both forms are accepted when reading.
// Setting a nil or empty slice clears the extension.
func CreateRepeatedPrimitiveTyped[M Extendable, E any](k wire.Kind, tag, nonPackedTag, packedTag uint32) *Extension[M, []E] {
	checkScalarType[E](k)
	if tag != nonPackedTag && tag != packedTag {
		panic(fmt.Sprintf("proto: extension tag %d is neither %d nor %d", tag, nonPackedTag, packedTag))
	}
	checkTag(k, nonPackedTag)
	packed := k.IsPackable() && tag == packedTag
	if packed && wire.TagWireType(packedTag) != wire.BytesType {
		panic(fmt.Sprintf("proto: packed extension tag %d is not length-delimited", packedTag))
	}
	el := elemOps[E]{kind: k, num: wire.TagFieldNumber(tag)}
	return newExtension[M](k, tag, true, repeatedOps(el, packed))
}

// CreateRepeatedMessageTyped returns a repeated extension of message or group
// kind holding a []T. Setting a nil or empty slice clears the extension.
func CreateRepeatedMessageTyped[M Extendable, T Message](k wire.Kind, newMessage func() T, tag uint32) *Extension[M, []T] {
	if !k.IsMessage() {
		panic(fmt.Sprintf("proto: CreateRepeatedMessageTyped with %v kind", k))
	}
	checkTag(k, tag)
	el := elemOps[T]{kind: k, num: wire.TagFieldNumber(tag), newMessage: func() Message { return newMessage() }}
	return newExtension[M](k, tag, true, repeatedOps(el, false))
}

// elemOps handles single values of an extension.
type elemOps[E any] struct {
	kind       wire.Kind
	num        wire.Number
	newMessage func() Message
}

func (o elemOps[E]) size(v E) int { return sizeValue(o.num, o.kind, v) }

func (o elemOps[E]) sizeNoTag(v E) int { return sizeValueNoTag(o.kind, v) }

func (o elemOps[E]) write(w *wire.Writer, v E) error { return writeValue(w, o.num, o.kind, v) }

func (o elemOps[E]) writeNoTag(w *wire.Writer, v E) error { return writeValueNoTag(w, o.kind, v) }

func (o elemOps[E]) read(r *wire.Reader) (E, error) {
	v, err := readValue(r, o.num, o.kind, o.newMessage)
	if err != nil {
		var zero E
		return zero, err
	}
	return v.(E), nil
}

func (o elemOps[E]) equal(a, b E) bool { return equalValue(o.kind, a, b) }

func (o elemOps[E]) clone(v E) E { return cloneValue(o.kind, v, o.newMessage).(E) }

func isNil[T any](v T) bool {
	var zero T
	return any(v) == any(zero)
}

func singularOps[T any](el elemOps[T]) extensionOps[T] {
	return extensionOps[T]{
		size:  el.size,
		write: el.write,
		// The last occurrence wins.
		merge: func(_ T, f fieldmap.UnknownField) (T, error) {
			if wire.TagWireType(f.Tag) != el.kind.WireType() {
				var zero T
				return zero, wire.ErrInvalidWireType
			}
			return el.read(wire.NewReader(f.Bytes))
		},
		equal: el.equal,
		clone: el.clone,
		empty: func(T) bool { return false },
	}
}

func repeatedOps[E any](el elemOps[E], packed bool) extensionOps[[]E] {
	ops := extensionOps[[]E]{
		merge: func(v []E, f fieldmap.UnknownField) ([]E, error) {
			r := wire.NewReader(f.Bytes)
			switch typ := wire.TagWireType(f.Tag); {
			case typ == el.kind.WireType():
				x, err := el.read(r)
				if err != nil {
					return v, err
				}
				return append(v, x), nil
			case typ == wire.BytesType && el.kind.IsPackable():
				n, err := r.ReadLength()
				if err != nil {
					return v, err
				}
				old, err := r.PushLimit(n)
				if err != nil {
					return v, err
				}
				for !r.IsAtEnd() {
					x, err := el.read(r)
					if err != nil {
						return v, err
					}
					v = append(v, x)
				}
				r.PopLimit(old)
				return v, nil
			}
			return v, wire.ErrInvalidWireType
		},
		equal: func(a, b []E) bool {
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if !el.equal(a[i], b[i]) {
					return false
				}
			}
			return true
		},
		clone: func(v []E) []E {
			c := make([]E, len(v))
			for i, x := range v {
				c[i] = el.clone(x)
			}
			return c
		},
		empty: func(v []E) bool { return len(v) == 0 },
	}
	if packed {
		payload := func(v []E) int {
			n := 0
			for _, x := range v {
				n += el.sizeNoTag(x)
			}
			return n
		}
		ops.size = func(v []E) int {
			if len(v) == 0 {
				return 0
			}
			n := payload(v)
			return wire.SizeTag(el.num) + wire.SizeRawVarint32(uint32(n)) + n
		}
		ops.write = func(w *wire.Writer, v []E) error {
			if len(v) == 0 {
				return nil
			}
			if err := w.WriteTag(el.num, wire.BytesType); err != nil {
				return err
			}
			if err := w.WriteRawVarint32(uint32(payload(v))); err != nil {
				return err
			}
			for _, x := range v {
				if err := el.writeNoTag(w, x); err != nil {
					return err
				}
			}
			return nil
		}
	} else {
		ops.size = func(v []E) int {
			n := 0
			for _, x := range v {
				n += el.size(x)
			}
			return n
		}
		ops.write = func(w *wire.Writer, v []E) error {
			for _, x := range v {
				if err := el.write(w, x); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return ops
}

// codec adapts e to the untyped interface the field map stores.
type codec[M Extendable, T any] struct {
	e *Extension[M, T]
}

func (c codec[M, T]) ID() uint64 { return c.e.id }

func (c codec[M, T]) Size(v any) int { return c.e.ops.size(v.(T)) }

func (c codec[M, T]) Write(w *wire.Writer, v any) error { return c.e.ops.write(w, v.(T)) }

func (c codec[M, T]) Equal(a, b any) bool { return c.e.ops.equal(a.(T), b.(T)) }

func (c codec[M, T]) Clone(v any) any { return c.e.ops.clone(v.(T)) }

func (c codec[M, T]) MergeUnknown(v any, f fieldmap.UnknownField) (any, error) {
	cur, _ := v.(T)
	return c.e.ops.merge(cur, f)
}

// valueOf returns the value held by s, decoding and claiming its raw
// occurrences on first use. If decoding fails s is left unclaimed.
func (e *Extension[M, T]) valueOf(s *fieldmap.Slot) (T, error) {
	if c := s.Codec(); c != nil {
		if c.ID() != e.id {
			panic(fmt.Sprintf("proto: %v: field already claimed by a different extension", e))
		}
		return s.Value().(T), nil
	}
	var v T
	for _, f := range s.Unknown() {
		var err error
		if v, err = e.ops.merge(v, f); err != nil {
			var zero T
			return zero, err
		}
	}
	s.SetValue(codec[M, T]{e}, v)
	return v, nil
}

// HasExtension reports whether field e is present in m, decoded or not.
func HasExtension[M Extendable, T any](m M, e *Extension[M, T]) bool {
	return m.extendableMessage().unknownFields.Get(e.Number()) != nil
}

// GetExtension returns the value of e in m, or the zero value of T if the
// field is absent. Stored occurrences are decoded on the first call and the
// result is cached; later calls return the cached value.
//
// It returns an error if the stored bytes cannot be decoded as e, and panics
// if the field was already decoded by a different Extension.
func GetExtension[M Extendable, T any](m M, e *Extension[M, T]) (T, error) {
	s := m.extendableMessage().unknownFields.Get(e.Number())
	if s == nil {
		var zero T
		return zero, nil
	}
	return e.valueOf(s)
}

// SetExtension stores v as the value of e in m, replacing any stored
// occurrences. A nil message or a nil or empty slice clears the field.
func SetExtension[M Extendable, T any](m M, e *Extension[M, T], v T) {
	x := m.extendableMessage()
	x.InvalidateSize()
	if e.ops.empty(v) {
		x.unknownFields.Remove(e.Number())
		return
	}
	c := codec[M, T]{e}
	if s := x.unknownFields.Get(e.Number()); s != nil {
		s.SetValue(c, v)
		return
	}
	x.fields().Put(e.Number(), fieldmap.NewSlot(c, v))
}

// ClearExtension removes field e from m.
func ClearExtension[M Extendable, T any](m M, e *Extension[M, T]) {
	x := m.extendableMessage()
	x.InvalidateSize()
	x.unknownFields.Remove(e.Number())
}

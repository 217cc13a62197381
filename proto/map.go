// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
)

// Map entries are embedded messages with the key as field 1 and the value as
// field 2.
const (
	mapKeyNumber   wire.Number = 1
	mapValueNumber wire.Number = 2
)

// MergeMapEntry reads one length-delimited map entry from r into dst and
// returns the map, allocating it if dst is nil. The field tag must already
// have been consumed.
//
// A missing key or value takes its default: the zero value for scalars,
// wire.EmptyBytes for bytes, and a message from newValue for messages.
// newValue is only used for message values and may be nil otherwise.
// An entry whose key is already present replaces it.
func MergeMapEntry[K comparable, V any](r *wire.Reader, dst map[K]V, keyKind, valueKind wire.Kind, newValue func() V) (map[K]V, error) {
	n, err := r.ReadLength()
	if err != nil {
		return dst, err
	}
	old, err := r.PushLimit(n)
	if err != nil {
		return dst, err
	}

	var key K
	var value V
	switch valueKind {
	case wire.MessageKind:
		value = newValue()
	case wire.BytesKind:
		value = any(wire.EmptyBytes).(V)
	}
	keyTag := wire.MakeTag(mapKeyNumber, keyKind.WireType())
	valueTag := wire.MakeTag(mapValueNumber, valueKind.WireType())
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return dst, err
		}
		if tag == 0 {
			break
		}
		switch tag {
		case keyTag:
			v, err := r.ReadPrimitiveField(keyKind)
			if err != nil {
				return dst, err
			}
			key = v.(K)
		case valueTag:
			if valueKind == wire.MessageKind {
				if err := r.ReadMessage(any(value).(Message)); err != nil {
					return dst, err
				}
				continue
			}
			v, err := r.ReadPrimitiveField(valueKind)
			if err != nil {
				return dst, err
			}
			value = v.(V)
		default:
			ok, err := r.SkipField(tag)
			if err != nil {
				return dst, err
			}
			if !ok {
				// The entry ends at its length, not at an END_GROUP tag.
				return dst, wire.ErrInvalidEndTag
			}
		}
	}
	if err := r.CheckLastTagWas(0); err != nil {
		return dst, err
	}
	r.PopLimit(old)

	if dst == nil {
		dst = make(map[K]V)
	}
	dst[key] = value
	return dst, nil
}

// SizeMapField returns the encoded size of every entry of m as field num.
func SizeMapField[K comparable, V any](num wire.Number, m map[K]V, keyKind, valueKind wire.Kind) int {
	n := 0
	for k, v := range m {
		e := sizeMapEntry(k, v, keyKind, valueKind)
		n += wire.SizeTag(num) + wire.SizeRawVarint32(uint32(e)) + e
	}
	return n
}

// WriteMapField writes every entry of m as field num, in increasing key
// order so that equal maps encode identically.
func WriteMapField[K comparable, V any](w *wire.Writer, num wire.Number, m map[K]V, keyKind, valueKind wire.Kind) error {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareMapKeys[K])
	for _, k := range keys {
		v := m[k]
		if err := w.WriteTag(num, wire.BytesType); err != nil {
			return err
		}
		if err := w.WriteRawVarint32(uint32(sizeMapEntry(k, v, keyKind, valueKind))); err != nil {
			return err
		}
		if err := writeValue(w, mapKeyNumber, keyKind, k); err != nil {
			return err
		}
		if isNilMapMessage(valueKind, v) {
			// Written as an empty message.
			if err := w.WriteTag(mapValueNumber, wire.BytesType); err != nil {
				return err
			}
			if err := w.WriteRawVarint32(0); err != nil {
				return err
			}
			continue
		}
		if err := writeValue(w, mapValueNumber, valueKind, v); err != nil {
			return err
		}
	}
	return nil
}

func sizeMapEntry[K comparable, V any](k K, v V, keyKind, valueKind wire.Kind) int {
	n := sizeValue(mapKeyNumber, keyKind, k)
	if isNilMapMessage(valueKind, v) {
		return n + wire.SizeTag(mapValueNumber) + 1
	}
	return n + sizeValue(mapValueNumber, valueKind, v)
}

func isNilMapMessage[V any](k wire.Kind, v V) bool {
	return k == wire.MessageKind && isNil(v)
}

// compareMapKeys orders keys of the types allowed for map keys.
func compareMapKeys[K comparable](a, b K) int {
	switch x := any(a).(type) {
	case int32:
		return cmp.Compare(x, any(b).(int32))
	case int64:
		return cmp.Compare(x, any(b).(int64))
	case uint32:
		return cmp.Compare(x, any(b).(uint32))
	case uint64:
		return cmp.Compare(x, any(b).(uint64))
	case string:
		return strings.Compare(x, any(b).(string))
	case bool:
		y := any(b).(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	}
	panic(fmt.Sprintf("proto: invalid map key type %T", a))
}

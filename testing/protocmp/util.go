// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protocmp

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/infiniteloopcloud/protonano/proto"
)

var messageReflectType = reflect.TypeOf(Message{})

// IgnoreFields ignores the specified fields in messages of type m.
// Fields are named by their Go field name.
// This panics if a field of the given name does not exist.
//
// This must be used in conjunction with Transform.
func IgnoreFields(message proto.Message, names ...string) cmp.Option {
	t := reflect.TypeOf(message)
	if !isMessageType(t) {
		panic(fmt.Sprintf("invalid message type %v", t))
	}
	ignore := make(map[string]bool)
	for _, s := range names {
		f, ok := t.Elem().FieldByName(s)
		if !ok || f.Anonymous || !f.IsExported() {
			panic(fmt.Sprintf("message %v has no field %q", t.Elem(), s))
		}
		ignore[s] = true
	}
	return cmp.FilterPath(func(p cmp.Path) bool {
		mi, ok := p.Index(-1).(cmp.MapIndex)
		if !ok {
			return false
		}
		ps := p.Index(-2)
		if ps.Type() != messageReflectType {
			return false
		}
		vx, vy := ps.Values()
		return ignore[mi.Key().String()] && (isType(vx, t) || isType(vy, t))
	}, cmp.Ignore())
}

func isType(v reflect.Value, t reflect.Type) bool {
	if !v.IsValid() || v.IsNil() {
		return false
	}
	mt, _ := v.Interface().(Message)[messageTypeKey].(messageType)
	return mt.t == t
}

// IgnoreEmptyMessages ignores messages that are empty or unpopulated.
// It applies to standalone Messages, singular message fields,
// list fields of messages, and map fields of message values.
//
// This must be used in conjunction with Transform.
func IgnoreEmptyMessages() cmp.Option {
	return cmp.FilterPath(func(p cmp.Path) bool {
		vx, vy := p.Last().Values()
		return isEmptyMessage(vx) || isEmptyMessage(vy)
	}, cmp.Ignore())
}

func isEmptyMessage(v reflect.Value) bool {
	if !v.IsValid() || !v.CanInterface() {
		return false
	}
	if m, ok := v.Interface().(Message); ok {
		return len(m) == 0 || (len(m) == 1 && m[messageTypeKey] != nil)
	}
	return false
}

// IgnoreUnknown ignores unknown fields and extensions in all messages.
//
// This must be used in conjunction with Transform.
func IgnoreUnknown() cmp.Option {
	return cmp.FilterPath(func(p cmp.Path) bool {
		// Filter for Message maps.
		mi, ok := p.Index(-1).(cmp.MapIndex)
		if !ok {
			return false
		}
		ps := p.Index(-2)
		if ps.Type() != messageReflectType {
			return false
		}

		// Filter for unknown fields (which always have a numeric map key).
		return strings.Trim(mi.Key().String(), "0123456789") == ""
	}, cmp.Ignore())
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protocmp provides protobuf specific options for the cmp package.
package protocmp

import (
	"reflect"
	"strconv"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/infiniteloopcloud/protonano/proto"
)

const messageTypeKey = "@type"

type messageType struct {
	t reflect.Type
}

func (t messageType) String() string {
	return t.t.Elem().String()
}

func (t1 messageType) Equal(t2 messageType) bool {
	return t1.t == t2.t
}

// Message is a dynamic representation of a message that is suitable for
// cmp.Equal and cmp.Diff to directly operate upon.
//
// Every populated field is stored in the map with the key being the Go name
// of the field (e.g., "OptionalInt32") and the value being the field value.
// A field is populated if it is a non-empty slice or map, or any other
// non-zero value. Singular and repeated messages are themselves transformed
// when compared.
//
// Every unknown field and extension is stored in the map with the key being
// the field number encoded as a decimal string (e.g., "132") and the value
// being the raw bytes of every occurrence of that field, as the
// protoreflect.RawFields type.
type Message map[string]interface{}

// String returns a formatted string for the message.
// It is intended for human debugging and has no guarantees about its
// exact format or the stability of its output.
func (m Message) String() string {
	if m == nil {
		return "<nil>"
	}
	return string(appendMessage(nil, m))
}

type option struct{}

var messageInterfaceType = reflect.TypeOf((*proto.Message)(nil)).Elem()

// isMessageType reports whether t is a pointer to a generated-shape message.
func isMessageType(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct && t.Implements(messageInterfaceType)
}

func isMessage(v interface{}) bool {
	return v != nil && isMessageType(reflect.TypeOf(v))
}

// Transform returns a cmp.Option that converts each proto.Message to a Message.
// The transformation does not mutate nor alias any converted messages.
func Transform(...option) cmp.Option {
	// NOTE: There are currently no custom options for Transform,
	// but the use of an unexported type keeps the future open.
	return cmp.FilterValues(func(x, y interface{}) bool {
		return isMessage(x) && isMessage(y)
	}, cmp.Transformer("protocmp.Transform", func(m interface{}) Message {
		v := reflect.ValueOf(m)
		if v.IsNil() {
			return nil
		}
		return transformMessage(v)
	}))
}

type unknownFielder interface {
	RawUnknownFields() (protoreflect.RawFields, error)
}

func transformMessage(v reflect.Value) Message {
	mx := Message{messageTypeKey: messageType{t: v.Type()}}
	s := v.Elem()
	for i := 0; i < s.NumField(); i++ {
		f := s.Type().Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		if fv := s.Field(i); populated(fv) {
			mx[f.Name] = fv.Interface()
		}
	}
	if u, ok := v.Interface().(unknownFielder); ok {
		b, err := u.RawUnknownFields()
		if err != nil {
			panic(err)
		}
		transformUnknown(mx, b)
	}
	return mx
}

func populated(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() > 0
	default:
		// Floats are populated if any bit is set, so -0 is kept.
		return !v.IsZero()
	}
}

// transformUnknown groups the occurrences in b by field number.
func transformUnknown(mx Message, b protoreflect.RawFields) {
	for len(b) > 0 {
		num, _, n := protowire.ConsumeField(b)
		if n < 0 {
			panic(protowire.ParseError(n))
		}
		k := strconv.Itoa(int(num))
		raw, _ := mx[k].(protoreflect.RawFields)
		mx[k] = append(raw, b[:n]...)
		b = b[n:]
	}
}

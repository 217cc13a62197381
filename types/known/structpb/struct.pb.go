// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package structpb contains the Struct, Value, ListValue and NullValue
// well-known types in the shape the code generator emits.
//
// Together they represent an arbitrary JSON value:
//
//	message Struct {
//	  map<string, Value> fields = 1;
//	}
//
//	message Value {
//	  oneof kind {
//	    NullValue null_value = 1;
//	    double number_value = 2;
//	    string string_value = 3;
//	    bool bool_value = 4;
//	    Struct struct_value = 5;
//	    ListValue list_value = 6;
//	  }
//	}
//
//	message ListValue {
//	  repeated Value values = 1;
//	}
//
// # Conversion to and from a Go interface
//
// NewValue, NewStruct and NewList construct messages from Go values of the
// types produced by encoding/json. AsInterface, AsMap and AsSlice convert
// them back.
package structpb

import (
	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/proto"
	"github.com/infiniteloopcloud/protonano/runtime/protoiface"
)

// NullValue is a singleton enumeration to represent the null value for the
// Value type union.
type NullValue = int32

const (
	// Null value.
	NullValue_NULL_VALUE NullValue = 0
)

// Struct represents a structured data value, consisting of fields which map
// to dynamically typed values.
type Struct struct {
	protoiface.SizeCache

	// Unordered map of dynamically typed values.
	Fields map[string]*Value
}

func (x *Struct) GetFields() map[string]*Value {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *Struct) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *Struct) SerializedSize() int {
	n := proto.SizeMapField(1, x.Fields, wire.StringKind, wire.MessageKind)
	x.StoreSize(n)
	return n
}

func (x *Struct) WriteTo(w *wire.Writer) error {
	return proto.WriteMapField(w, 1, x.Fields, wire.StringKind, wire.MessageKind)
}

func (x *Struct) MergeFrom(r *wire.Reader) error {
	x.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 10:
			if x.Fields, err = proto.MergeMapEntry(r, x.Fields, wire.StringKind, wire.MessageKind, newValue); err != nil {
				return err
			}
		default:
			ok, err := r.SkipField(tag)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}

func newValue() *Value { return &Value{} }

// Value represents a dynamically typed value which can be either null, a
// number, a string, a boolean, a recursive struct value, or a list of
// values. A Value with no kind set encodes as an empty message, converts to
// nil with AsInterface and encodes as null in BSON.
type Value struct {
	protoiface.SizeCache

	// Types that are assignable to Kind:
	//
	//	*Value_NullValue
	//	*Value_NumberValue
	//	*Value_StringValue
	//	*Value_BoolValue
	//	*Value_StructValue
	//	*Value_ListValue
	Kind isValue_Kind
}

type isValue_Kind interface {
	isValue_Kind()
}

type Value_NullValue struct {
	// Represents a null value.
	NullValue NullValue
}

type Value_NumberValue struct {
	// Represents a double value.
	NumberValue float64
}

type Value_StringValue struct {
	// Represents a string value.
	StringValue string
}

type Value_BoolValue struct {
	// Represents a boolean value.
	BoolValue bool
}

type Value_StructValue struct {
	// Represents a structured value.
	StructValue *Struct
}

type Value_ListValue struct {
	// Represents a repeated Value.
	ListValue *ListValue
}

func (*Value_NullValue) isValue_Kind()   {}
func (*Value_NumberValue) isValue_Kind() {}
func (*Value_StringValue) isValue_Kind() {}
func (*Value_BoolValue) isValue_Kind()   {}
func (*Value_StructValue) isValue_Kind() {}
func (*Value_ListValue) isValue_Kind()   {}

func (x *Value) GetKind() isValue_Kind {
	if x != nil {
		return x.Kind
	}
	return nil
}

func (x *Value) GetNullValue() NullValue {
	if x, ok := x.GetKind().(*Value_NullValue); ok {
		return x.NullValue
	}
	return NullValue_NULL_VALUE
}

func (x *Value) GetNumberValue() float64 {
	if x, ok := x.GetKind().(*Value_NumberValue); ok {
		return x.NumberValue
	}
	return 0
}

func (x *Value) GetStringValue() string {
	if x, ok := x.GetKind().(*Value_StringValue); ok {
		return x.StringValue
	}
	return ""
}

func (x *Value) GetBoolValue() bool {
	if x, ok := x.GetKind().(*Value_BoolValue); ok {
		return x.BoolValue
	}
	return false
}

func (x *Value) GetStructValue() *Struct {
	if x, ok := x.GetKind().(*Value_StructValue); ok {
		return x.StructValue
	}
	return nil
}

func (x *Value) GetListValue() *ListValue {
	if x, ok := x.GetKind().(*Value_ListValue); ok {
		return x.ListValue
	}
	return nil
}

func (x *Value) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

// SerializedSize counts the set oneof case even when it holds the zero
// value, since presence is what distinguishes the cases.
func (x *Value) SerializedSize() int {
	n := 0
	switch k := x.Kind.(type) {
	case *Value_NullValue:
		n += wire.SizeEnum(1, k.NullValue)
	case *Value_NumberValue:
		n += wire.SizeDouble(2, k.NumberValue)
	case *Value_StringValue:
		n += wire.SizeString(3, k.StringValue)
	case *Value_BoolValue:
		n += wire.SizeBool(4, k.BoolValue)
	case *Value_StructValue:
		n += sizeMessageOrEmpty(5, k.StructValue)
	case *Value_ListValue:
		n += sizeMessageOrEmpty(6, k.ListValue)
	}
	x.StoreSize(n)
	return n
}

func (x *Value) WriteTo(w *wire.Writer) error {
	switch k := x.Kind.(type) {
	case *Value_NullValue:
		return w.WriteEnum(1, k.NullValue)
	case *Value_NumberValue:
		return w.WriteDouble(2, k.NumberValue)
	case *Value_StringValue:
		return w.WriteString(3, k.StringValue)
	case *Value_BoolValue:
		return w.WriteBool(4, k.BoolValue)
	case *Value_StructValue:
		return writeMessageOrEmpty(w, 5, k.StructValue)
	case *Value_ListValue:
		return writeMessageOrEmpty(w, 6, k.ListValue)
	}
	return nil
}

func (x *Value) MergeFrom(r *wire.Reader) error {
	x.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 8:
			v, err := r.ReadEnum()
			if err != nil {
				return err
			}
			x.Kind = &Value_NullValue{NullValue: v}
		case 17:
			v, err := r.ReadDouble()
			if err != nil {
				return err
			}
			x.Kind = &Value_NumberValue{NumberValue: v}
		case 26:
			v, err := r.ReadString()
			if err != nil {
				return err
			}
			x.Kind = &Value_StringValue{StringValue: v}
		case 32:
			v, err := r.ReadBool()
			if err != nil {
				return err
			}
			x.Kind = &Value_BoolValue{BoolValue: v}
		case 42:
			k, ok := x.Kind.(*Value_StructValue)
			if !ok || k.StructValue == nil {
				k = &Value_StructValue{StructValue: &Struct{}}
				x.Kind = k
			}
			if err := r.ReadMessage(k.StructValue); err != nil {
				return err
			}
		case 50:
			k, ok := x.Kind.(*Value_ListValue)
			if !ok || k.ListValue == nil {
				k = &Value_ListValue{ListValue: &ListValue{}}
				x.Kind = k
			}
			if err := r.ReadMessage(k.ListValue); err != nil {
				return err
			}
		default:
			ok, err := r.SkipField(tag)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}

// ListValue is a wrapper around a repeated field of values.
type ListValue struct {
	protoiface.SizeCache

	// Repeated field of dynamically typed values.
	Values []*Value
}

func (x *ListValue) GetValues() []*Value {
	if x != nil {
		return x.Values
	}
	return nil
}

func (x *ListValue) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *ListValue) SerializedSize() int {
	n := 0
	for _, v := range x.Values {
		n += sizeMessageOrEmpty(1, v)
	}
	x.StoreSize(n)
	return n
}

func (x *ListValue) WriteTo(w *wire.Writer) error {
	for _, v := range x.Values {
		if err := writeMessageOrEmpty(w, 1, v); err != nil {
			return err
		}
	}
	return nil
}

func (x *ListValue) MergeFrom(r *wire.Reader) error {
	x.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 10:
			v := &Value{}
			if err := r.ReadMessage(v); err != nil {
				return err
			}
			x.Values = append(x.Values, v)
		default:
			ok, err := r.SkipField(tag)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}

// sizeMessageOrEmpty sizes a set message field, counting a nil message as
// an empty one.
func sizeMessageOrEmpty(num wire.Number, m wire.Message) int {
	if isNilMessage(m) {
		return wire.SizeTag(num) + 1
	}
	return wire.SizeMessage(num, m)
}

func writeMessageOrEmpty(w *wire.Writer, num wire.Number, m wire.Message) error {
	if isNilMessage(m) {
		if err := w.WriteTag(num, wire.BytesType); err != nil {
			return err
		}
		return w.WriteRawVarint32(0)
	}
	return w.WriteMessage(num, m)
}

func isNilMessage(m wire.Message) bool {
	switch m := m.(type) {
	case *Struct:
		return m == nil
	case *ListValue:
		return m == nil
	case *Value:
		return m == nil
	}
	return m == nil
}

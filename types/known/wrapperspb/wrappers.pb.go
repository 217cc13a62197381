// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wrapperspb contains the wrapper well-known types in the shape the
// code generator emits.
//
// Each wrapper holds a single scalar in field 1. A wrapper distinguishes an
// unset value (a nil message) from the zero value (an empty message) when it
// is used as the type of a message field.
package wrapperspb

import (
	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/runtime/protoiface"
)

// Wrapper message for `double`.
//
//	message DoubleValue {
//	  double value = 1;
//	}
type DoubleValue struct {
	protoiface.SizeCache

	// The double value.
	Value float64
}

// Double stores v in a new DoubleValue and returns a pointer to it.
func Double(v float64) *DoubleValue {
	return &DoubleValue{Value: v}
}

func (x *DoubleValue) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *DoubleValue) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *DoubleValue) SerializedSize() int {
	n := 0
	if x.Value != 0 {
		n += wire.SizeDouble(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *DoubleValue) WriteTo(w *wire.Writer) error {
	if x.Value != 0 {
		return w.WriteDouble(1, x.Value)
	}
	return nil
}

func (x *DoubleValue) MergeFrom(r *wire.Reader) error {
	x.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 9:
			if x.Value, err = r.ReadDouble(); err != nil {
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

// Wrapper message for `float`.
//
//	message FloatValue {
//	  float value = 1;
//	}
type FloatValue struct {
	protoiface.SizeCache

	// The float value.
	Value float32
}

// Float stores v in a new FloatValue and returns a pointer to it.
func Float(v float32) *FloatValue {
	return &FloatValue{Value: v}
}

func (x *FloatValue) GetValue() float32 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *FloatValue) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *FloatValue) SerializedSize() int {
	n := 0
	if x.Value != 0 {
		n += wire.SizeFloat(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *FloatValue) WriteTo(w *wire.Writer) error {
	if x.Value != 0 {
		return w.WriteFloat(1, x.Value)
	}
	return nil
}

func (x *FloatValue) MergeFrom(r *wire.Reader) error {
	x.InvalidateSize()
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 13:
			if x.Value, err = r.ReadFloat(); err != nil {
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

// Wrapper message for `int64`.
//
//	message Int64Value {
//	  int64 value = 1;
//	}
type Int64Value struct {
	protoiface.SizeCache

	// The int64 value.
	Value int64
}

// Int64 stores v in a new Int64Value and returns a pointer to it.
func Int64(v int64) *Int64Value {
	return &Int64Value{Value: v}
}

func (x *Int64Value) GetValue() int64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Int64Value) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *Int64Value) SerializedSize() int {
	n := 0
	if x.Value != 0 {
		n += wire.SizeInt64(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *Int64Value) WriteTo(w *wire.Writer) error {
	if x.Value != 0 {
		return w.WriteInt64(1, x.Value)
	}
	return nil
}

func (x *Int64Value) MergeFrom(r *wire.Reader) error {
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
			if x.Value, err = r.ReadInt64(); err != nil {
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

// Wrapper message for `uint64`.
//
//	message UInt64Value {
//	  uint64 value = 1;
//	}
type UInt64Value struct {
	protoiface.SizeCache

	// The uint64 value.
	Value uint64
}

// UInt64 stores v in a new UInt64Value and returns a pointer to it.
func UInt64(v uint64) *UInt64Value {
	return &UInt64Value{Value: v}
}

func (x *UInt64Value) GetValue() uint64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *UInt64Value) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *UInt64Value) SerializedSize() int {
	n := 0
	if x.Value != 0 {
		n += wire.SizeUint64(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *UInt64Value) WriteTo(w *wire.Writer) error {
	if x.Value != 0 {
		return w.WriteUint64(1, x.Value)
	}
	return nil
}

func (x *UInt64Value) MergeFrom(r *wire.Reader) error {
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
			if x.Value, err = r.ReadUint64(); err != nil {
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

// Wrapper message for `int32`.
//
//	message Int32Value {
//	  int32 value = 1;
//	}
type Int32Value struct {
	protoiface.SizeCache

	// The int32 value.
	Value int32
}

// Int32 stores v in a new Int32Value and returns a pointer to it.
func Int32(v int32) *Int32Value {
	return &Int32Value{Value: v}
}

func (x *Int32Value) GetValue() int32 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Int32Value) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *Int32Value) SerializedSize() int {
	n := 0
	if x.Value != 0 {
		n += wire.SizeInt32(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *Int32Value) WriteTo(w *wire.Writer) error {
	if x.Value != 0 {
		return w.WriteInt32(1, x.Value)
	}
	return nil
}

func (x *Int32Value) MergeFrom(r *wire.Reader) error {
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
			if x.Value, err = r.ReadInt32(); err != nil {
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

// Wrapper message for `uint32`.
//
//	message UInt32Value {
//	  uint32 value = 1;
//	}
type UInt32Value struct {
	protoiface.SizeCache

	// The uint32 value.
	Value uint32
}

// UInt32 stores v in a new UInt32Value and returns a pointer to it.
func UInt32(v uint32) *UInt32Value {
	return &UInt32Value{Value: v}
}

func (x *UInt32Value) GetValue() uint32 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *UInt32Value) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *UInt32Value) SerializedSize() int {
	n := 0
	if x.Value != 0 {
		n += wire.SizeUint32(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *UInt32Value) WriteTo(w *wire.Writer) error {
	if x.Value != 0 {
		return w.WriteUint32(1, x.Value)
	}
	return nil
}

func (x *UInt32Value) MergeFrom(r *wire.Reader) error {
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
			if x.Value, err = r.ReadUint32(); err != nil {
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

// Wrapper message for `bool`.
//
//	message BoolValue {
//	  bool value = 1;
//	}
type BoolValue struct {
	protoiface.SizeCache

	// The bool value.
	Value bool
}

// Bool stores v in a new BoolValue and returns a pointer to it.
func Bool(v bool) *BoolValue {
	return &BoolValue{Value: v}
}

func (x *BoolValue) GetValue() bool {
	if x != nil {
		return x.Value
	}
	return false
}

func (x *BoolValue) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *BoolValue) SerializedSize() int {
	n := 0
	if x.Value {
		n += wire.SizeBool(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *BoolValue) WriteTo(w *wire.Writer) error {
	if x.Value {
		return w.WriteBool(1, x.Value)
	}
	return nil
}

func (x *BoolValue) MergeFrom(r *wire.Reader) error {
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
			if x.Value, err = r.ReadBool(); err != nil {
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

// Wrapper message for `string`.
//
//	message StringValue {
//	  string value = 1;
//	}
type StringValue struct {
	protoiface.SizeCache

	// The string value.
	Value string
}

// String stores v in a new StringValue and returns a pointer to it.
func String(v string) *StringValue {
	return &StringValue{Value: v}
}

func (x *StringValue) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *StringValue) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *StringValue) SerializedSize() int {
	n := 0
	if x.Value != "" {
		n += wire.SizeString(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *StringValue) WriteTo(w *wire.Writer) error {
	if x.Value != "" {
		return w.WriteString(1, x.Value)
	}
	return nil
}

func (x *StringValue) MergeFrom(r *wire.Reader) error {
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
			if x.Value, err = r.ReadString(); err != nil {
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

// Wrapper message for `bytes`.
//
//	message BytesValue {
//	  bytes value = 1;
//	}
type BytesValue struct {
	protoiface.SizeCache

	// The bytes value.
	Value []byte
}

// Bytes stores v in a new BytesValue and returns a pointer to it.
func Bytes(v []byte) *BytesValue {
	return &BytesValue{Value: v}
}

func (x *BytesValue) GetValue() []byte {
	if x != nil {
		return x.Value
	}
	return nil
}

func (x *BytesValue) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *BytesValue) SerializedSize() int {
	n := 0
	if len(x.Value) != 0 {
		n += wire.SizeBytes(1, x.Value)
	}
	x.StoreSize(n)
	return n
}

func (x *BytesValue) WriteTo(w *wire.Writer) error {
	if len(x.Value) != 0 {
		return w.WriteBytes(1, x.Value)
	}
	return nil
}

func (x *BytesValue) MergeFrom(r *wire.Reader) error {
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
			if x.Value, err = r.ReadBytes(); err != nil {
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

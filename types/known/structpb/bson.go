// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structpb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/infiniteloopcloud/protonano/internal/errors"
)

// NewBsonValue constructs a Value from a single BSON value of type t.
//
// When converting an int64 to a NumberValue, numeric precision loss
// is possible since they are stored as a float64.
func NewBsonValue(t bsontype.Type, v []byte) (*Value, error) {
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		return NewNullValue(), nil
	case bson.TypeBoolean:
		var val bool
		if err := bson.UnmarshalValue(t, v, &val); err != nil {
			return nil, errors.New("invalid boolean: %v", err)
		}
		return NewBoolValue(val), nil
	case bson.TypeDouble, bson.TypeInt32, bson.TypeInt64:
		var val float64
		if err := bson.UnmarshalValue(t, v, &val); err != nil {
			return nil, errors.New("invalid number: %v", err)
		}
		return NewNumberValue(val), nil
	case bson.TypeString:
		var val string
		if err := bson.UnmarshalValue(t, v, &val); err != nil {
			return nil, errors.New("invalid string: %v", err)
		}
		return NewStringValue(val), nil
	case bson.TypeArray:
		var val primitive.A
		if err := bson.UnmarshalValue(t, v, &val); err != nil {
			return nil, errors.New("invalid list: %v", err)
		}
		v2, err := NewList(fromBsonSlice(val))
		if err != nil {
			return nil, err
		}
		return NewListValue(v2), nil
	case bson.TypeEmbeddedDocument:
		var val primitive.D
		if err := bson.UnmarshalValue(t, v, &val); err != nil {
			return nil, errors.New("invalid struct: %v", err)
		}
		v2, err := NewStruct(fromBsonDocument(val))
		if err != nil {
			return nil, err
		}
		return NewStructValue(v2), nil
	default:
		return nil, errors.New("invalid BSON type: %v", t)
	}
}

// fromBson rewrites the containers the driver decodes into interface{}
// values as the map and slice types NewValue accepts.
func fromBson(v interface{}) interface{} {
	switch v := v.(type) {
	case primitive.D:
		return fromBsonDocument(v)
	case primitive.M:
		m := make(map[string]interface{}, len(v))
		for k, e := range v {
			m[k] = fromBson(e)
		}
		return m
	case map[string]interface{}:
		return fromBson(primitive.M(v))
	case primitive.A:
		return fromBsonSlice(v)
	case []interface{}:
		return fromBsonSlice(v)
	case primitive.Null, primitive.Undefined:
		return nil
	}
	return v
}

func fromBsonDocument(d primitive.D) map[string]interface{} {
	m := make(map[string]interface{}, len(d))
	for _, e := range d {
		m[e.Key] = fromBson(e.Value)
	}
	return m
}

func fromBsonSlice(a []interface{}) []interface{} {
	s := make([]interface{}, len(a))
	for i, e := range a {
		s[i] = fromBson(e)
	}
	return s
}

// MarshalBSONValue encodes x as a single BSON value. A nil Value, or one
// with no kind set, is encoded as BSON null.
func (x *Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch k := x.GetKind().(type) {
	case nil, *Value_NullValue:
		return bson.TypeNull, nil, nil
	case *Value_NumberValue:
		// Non-finite numbers stay doubles instead of the strings AsInterface uses.
		return bson.MarshalValue(k.NumberValue)
	}
	return bson.MarshalValue(x.AsInterface())
}

// UnmarshalBSONValue replaces the kind of x with the decoded BSON value.
func (x *Value) UnmarshalBSONValue(t bsontype.Type, b []byte) error {
	x2, err := NewBsonValue(t, b)
	if err != nil {
		return err
	}
	x.Kind = x2.Kind
	x.InvalidateSize()
	return nil
}

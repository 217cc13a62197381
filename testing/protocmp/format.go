// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protocmp

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func appendValue(b []byte, v interface{}) []byte {
	switch v := v.(type) {
	case Message:
		return appendMessage(b, v)
	case string:
		return strconv.AppendQuote(b, v)
	case []byte:
		return strconv.AppendQuote(b, string(v))
	case protoreflect.RawFields:
		return appendRawFields(b, v)
	}
	rv := reflect.ValueOf(v)
	switch {
	case !rv.IsValid():
		return append(b, "<nil>"...)
	case isMessageType(rv.Type()):
		if rv.IsNil() {
			return append(b, "<nil>"...)
		}
		return appendMessage(b, transformMessage(rv))
	case rv.Kind() == reflect.Slice:
		return appendList(b, rv)
	case rv.Kind() == reflect.Map:
		return appendMap(b, rv)
	}
	return fmt.Append(b, v)
}

// appendMessage writes the known fields sorted by name, then the unknown
// fields in increasing field number order.
func appendMessage(b []byte, m Message) []byte {
	var known []string
	var unknown []int
	for k := range m {
		if k == messageTypeKey {
			continue
		}
		if n, err := strconv.Atoi(k); err == nil {
			unknown = append(unknown, n)
		} else {
			known = append(known, k)
		}
	}
	slices.Sort(known)
	slices.Sort(unknown)

	b = append(b, '{')
	for i, k := range known {
		if i > 0 {
			b = append(b, delim()...)
		}
		b = append(b, k...)
		b = append(b, ':')
		b = appendValue(b, m[k])
	}
	for i, n := range unknown {
		if i > 0 || len(known) > 0 {
			b = append(b, delim()...)
		}
		b = appendValue(b, m[strconv.Itoa(n)])
	}
	b = append(b, '}')
	return b
}

func appendList(b []byte, v reflect.Value) []byte {
	b = append(b, '[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			b = append(b, delim()...)
		}
		b = appendValue(b, v.Index(i).Interface())
	}
	b = append(b, ']')
	return b
}

func appendMap(b []byte, v reflect.Value) []byte {
	ks := v.MapKeys()
	slices.SortFunc(ks, compareKeys)

	b = append(b, '{')
	for i, k := range ks {
		if i > 0 {
			b = append(b, delim()...)
		}
		b = appendValue(b, k.Interface())
		b = append(b, ':')
		b = appendValue(b, v.MapIndex(k).Interface())
	}
	b = append(b, '}')
	return b
}

func compareKeys(x, y reflect.Value) int {
	switch x.Kind() {
	case reflect.Bool:
		return cmp.Compare(boolIndex(x.Bool()), boolIndex(y.Bool()))
	case reflect.Int32, reflect.Int64:
		return cmp.Compare(x.Int(), y.Int())
	case reflect.Uint32, reflect.Uint64:
		return cmp.Compare(x.Uint(), y.Uint())
	case reflect.String:
		return cmp.Compare(x.String(), y.String())
	}
	panic(fmt.Sprintf("invalid map key kind: %v", x.Kind()))
}

func boolIndex(v bool) int {
	if v {
		return 1
	}
	return 0
}

// appendRawFields decodes each field in b, rendering groups recursively.
func appendRawFields(b []byte, raw protoreflect.RawFields) []byte {
	b = append(b, '[')
	for i := 0; len(raw) > 0; i++ {
		if i > 0 {
			b = append(b, delim()...)
		}
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return append(b, "<malformed>]"...)
		}
		raw = raw[n:]
		b = strconv.AppendInt(b, int64(num), 10)
		b = append(b, ':')
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(raw)
			if n < 0 {
				return append(b, "<malformed>]"...)
			}
			b = strconv.AppendUint(b, v, 10)
			raw = raw[n:]
		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(raw)
			if n < 0 {
				return append(b, "<malformed>]"...)
			}
			b = fmt.Appendf(b, "0x%08x", v)
			raw = raw[n:]
		case protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(raw)
			if n < 0 {
				return append(b, "<malformed>]"...)
			}
			b = fmt.Appendf(b, "0x%016x", v)
			raw = raw[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(raw)
			if n < 0 {
				return append(b, "<malformed>]"...)
			}
			b = strconv.AppendQuote(b, string(v))
			raw = raw[n:]
		case protowire.StartGroupType:
			v, n := protowire.ConsumeGroup(num, raw)
			if n < 0 {
				return append(b, "<malformed>]"...)
			}
			b = appendRawFields(b, v)
			raw = raw[n:]
		default:
			return append(b, "<malformed>]"...)
		}
	}
	b = append(b, ']')
	return b
}

func delim() string {
	return ", "
}

// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timestamppb contains the Timestamp well-known type in the shape
// the code generator emits.
//
// The Timestamp message represents a timestamp,
// an instant in time since the Unix epoch (January 1st, 1970).
//
// # Conversion to a Go Time
//
// The AsTime method can be used to convert a Timestamp message to a
// standard Go time.Time value in UTC:
//
//	t := ts.AsTime()
//	... // make use of t as a time.Time
//
// The CheckValid method reports whether the timestamp is within the range
// of 0001-01-01 to 9999-12-31 with nanoseconds in [0, 1e9).
//
// # Conversion from a Go Time
//
// The timestamppb.New function can be used to construct a Timestamp message
// from a standard Go time.Time value:
//
//	ts := timestamppb.New(t)
//	... // make use of ts as a *timestamppb.Timestamp
package timestamppb

import (
	"fmt"
	"strings"
	"time"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
	"github.com/infiniteloopcloud/protonano/internal/errors"
	"github.com/infiniteloopcloud/protonano/runtime/protoiface"
)

// Timestamp is google.protobuf.Timestamp.
//
//	message Timestamp {
//	  int64 seconds = 1;
//	  int32 nanos = 2;
//	}
type Timestamp struct {
	protoiface.SizeCache

	// Seconds of UTC time since Unix epoch 1970-01-01T00:00:00Z.
	// Must be from 0001-01-01T00:00:00Z to 9999-12-31T23:59:59Z inclusive.
	Seconds int64
	// Non-negative fractions of a second at nanosecond resolution.
	// Must be from 0 to 999,999,999 inclusive.
	Nanos int32
}

// Now constructs a new Timestamp from the current time.
func Now() *Timestamp {
	return New(time.Now())
}

// New constructs a new Timestamp from the provided time.Time.
func New(t time.Time) *Timestamp {
	return &Timestamp{Seconds: int64(t.Unix()), Nanos: int32(t.Nanosecond())}
}

// AsTime converts x to a time.Time.
func (x *Timestamp) AsTime() time.Time {
	return time.Unix(int64(x.GetSeconds()), int64(x.GetNanos())).UTC()
}

// IsValid reports whether the timestamp is valid.
// It is equivalent to CheckValid == nil.
func (x *Timestamp) IsValid() bool {
	return x.check() == 0
}

// CheckValid returns an error if the timestamp is invalid.
// In particular, it checks whether the value represents a date that is
// in the range of 0001-01-01T00:00:00Z to 9999-12-31T23:59:59Z inclusive.
// An error is reported for a nil Timestamp.
func (x *Timestamp) CheckValid() error {
	switch x.check() {
	case invalidNil:
		return errors.New("invalid nil Timestamp")
	case invalidUnderflow:
		return errors.New("timestamp (%v) before 0001-01-01", x)
	case invalidOverflow:
		return errors.New("timestamp (%v) after 9999-12-31", x)
	case invalidNanos:
		return errors.New("timestamp (%v) has out-of-range nanos", x)
	default:
		return nil
	}
}

const (
	_ = iota
	invalidNil
	invalidUnderflow
	invalidOverflow
	invalidNanos
)

func (x *Timestamp) check() uint {
	const minTimestamp = -62135596800  // Seconds between 1970-01-01T00:00:00Z and 0001-01-01T00:00:00Z, inclusive
	const maxTimestamp = +253402300799 // Seconds between 1970-01-01T00:00:00Z and 9999-12-31T23:59:59Z, inclusive
	secs := x.GetSeconds()
	nanos := x.GetNanos()
	switch {
	case x == nil:
		return invalidNil
	case secs < minTimestamp:
		return invalidUnderflow
	case secs > maxTimestamp:
		return invalidOverflow
	case nanos < 0 || nanos >= 1e9:
		return invalidNanos
	default:
		return 0
	}
}

func (x *Timestamp) GetSeconds() int64 {
	if x != nil {
		return x.Seconds
	}
	return 0
}

func (x *Timestamp) GetNanos() int32 {
	if x != nil {
		return x.Nanos
	}
	return 0
}

// String returns the populated fields in a compact text form,
// such as "seconds:1 nanos:2".
func (x *Timestamp) String() string {
	if x == nil {
		return "<nil>"
	}
	var fields []string
	if x.Seconds != 0 {
		fields = append(fields, fmt.Sprintf("seconds:%d", x.Seconds))
	}
	if x.Nanos != 0 {
		fields = append(fields, fmt.Sprintf("nanos:%d", x.Nanos))
	}
	return strings.Join(fields, " ")
}

func (x *Timestamp) CachedSize() int {
	if n, ok := x.LoadSize(); ok {
		return n
	}
	return x.SerializedSize()
}

func (x *Timestamp) SerializedSize() int {
	n := 0
	if x.Seconds != 0 {
		n += wire.SizeInt64(1, x.Seconds)
	}
	if x.Nanos != 0 {
		n += wire.SizeInt32(2, x.Nanos)
	}
	x.StoreSize(n)
	return n
}

func (x *Timestamp) WriteTo(w *wire.Writer) error {
	if x.Seconds != 0 {
		if err := w.WriteInt64(1, x.Seconds); err != nil {
			return err
		}
	}
	if x.Nanos != 0 {
		if err := w.WriteInt32(2, x.Nanos); err != nil {
			return err
		}
	}
	return nil
}

func (x *Timestamp) MergeFrom(r *wire.Reader) error {
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
			if x.Seconds, err = r.ReadInt64(); err != nil {
				return err
			}
		case 16:
			if x.Nanos, err = r.ReadInt32(); err != nil {
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

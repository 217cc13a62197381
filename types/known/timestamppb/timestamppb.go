// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// timestamppb.Value implements https://pkg.go.dev/database/sql/driver#Valuer.Value
// timestamppb.Scan implements https://pkg.go.dev/database/sql#Scanner.Scan

package timestamppb

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/infiniteloopcloud/protonano/internal/errors"
)

var (
	_ driver.Valuer = (*Timestamp)(nil)
	_ sql.Scanner   = (*Timestamp)(nil)
)

// Value returns the timestamp as a UTC time.Time, or nil for a nil
// Timestamp, which the database stores as NULL.
func (t *Timestamp) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return t.AsTime(), nil
}

// Scan stores src, a time.Time, an RFC 3339 string or nil, in t.
// A nil src resets t to the Unix epoch.
func (t *Timestamp) Scan(src interface{}) error {
	if t == nil {
		if src == nil {
			return nil
		}
		return errors.New("invalid nil Timestamp")
	}

	switch src := src.(type) {
	case nil:
		t.set(time.Unix(0, 0))
		return nil
	case time.Time:
		t.set(src)
		return nil
	case string:
		t1, err := time.Parse(time.RFC3339Nano, src)
		if err != nil {
			return fmt.Errorf("error parsing timestamp data: %w", err)
		}
		t.set(t1)
		return nil
	}

	return fmt.Errorf("error converting timestamp data")
}

func (t *Timestamp) set(v time.Time) {
	t.Seconds, t.Nanos = v.Unix(), int32(v.Nanosecond())
	t.InvalidateSize()
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v time.Time
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	t.set(v)
	return nil
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	return t.AsTime().MarshalJSON()
}

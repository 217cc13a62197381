// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrapperspb

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/infiniteloopcloud/protonano/internal/errors"
)

var _ sql.Scanner = (*UInt32Value)(nil)

// EncodeSpanner returns the wrapped value as a nullable INT64 column.
// A nil wrapper encodes as NULL.
func (x *UInt32Value) EncodeSpanner() (interface{}, error) {
	if x == nil {
		return sql.NullInt64{}, nil
	}
	return sql.NullInt64{Int64: int64(x.Value), Valid: true}, nil
}

// Scan stores an int64 column in x. A NULL column clears the value.
func (x *UInt32Value) Scan(src interface{}) error {
	if x == nil {
		if src == nil {
			return nil
		}
		return errors.New("invalid nil UInt32Value")
	}

	switch src := src.(type) {
	case nil:
		x.set(0)
		return nil
	case int64:
		if src < 0 || src > 1<<32-1 {
			return fmt.Errorf("uint32 value %d out of range", src)
		}
		x.set(uint32(src))
		return nil
	}

	return fmt.Errorf("error converting uint32 data")
}

func (x *UInt32Value) set(v uint32) {
	x.Value = v
	x.InvalidateSize()
}

func (x *UInt32Value) UnmarshalJSON(data []byte) error {
	if x == nil {
		return errors.New("invalid nil UInt32Value")
	}
	var value uint32
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	x.set(value)
	return nil
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protoiface contains types referenced or implemented by messages.
//
// WARNING: This package should only be imported by message implementations.
// The functionality found in this package should be accessed through
// higher-level abstractions provided by the proto package.
package protoiface

import (
	"sync/atomic"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
)

// Message is the interface implemented by every generated message.
type Message = wire.Message

// SizeCache memoizes the encoded size of a message.
// Generated messages embed it and implement CachedSize and SerializedSize
// on top of it:
//
//	func (m *Foo) SerializedSize() int {
//		n := m.computeSize()
//		m.StoreSize(n)
//		return n
//	}
//
//	func (m *Foo) CachedSize() int {
//		if n, ok := m.LoadSize(); ok {
//			return n
//		}
//		return m.SerializedSize()
//	}
//
// The zero value holds no size. Loads and stores are atomic so that two
// goroutines sizing the same unchanged message race benignly; any other
// concurrent use of a message is the caller's responsibility.
type SizeCache struct {
	size atomic.Int32 // encoded size plus one; zero means unset
}

// LoadSize returns the cached size and whether one is set.
func (c *SizeCache) LoadSize() (int, bool) {
	n := c.size.Load()
	if n == 0 {
		return 0, false
	}
	return int(n - 1), true
}

// StoreSize records n as the encoded size.
func (c *SizeCache) StoreSize(n int) {
	c.size.Store(int32(n) + 1)
}

// InvalidateSize discards the cached size. Mutators call it so that the
// next CachedSize recomputes.
func (c *SizeCache) InvalidateSize() {
	c.size.Store(0)
}

// MarshalOptions configure the marshaler.
//
// This type is identical to the one in package proto.
type MarshalOptions = struct {
	// UseCachedSize trusts the size cached by a previous SerializedSize
	// instead of recomputing it. The message must not have changed since.
	UseCachedSize bool
}

// UnmarshalOptions configure the unmarshaler.
//
// This type is identical to the one in package proto.
type UnmarshalOptions = struct {
	// RecursionLimit bounds the nesting of messages and groups.
	// Zero means wire.DefaultRecursionLimit.
	RecursionLimit int

	// SizeLimit bounds the number of bytes consumed.
	// Zero means wire.DefaultSizeLimit.
	SizeLimit int
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto provides functions operating on protocol buffer messages.
//
// Messages are generated types that encode and decode themselves through
// package wire; this package supplies the whole-buffer operations around
// them and the runtime support generated code relies on.
//
// # Binary serialization
//
//   - Marshal converts a message to the wire format.
//     The MarshalOptions type provides more control over wire marshaling.
//   - MarshalTo writes a message into a buffer of exactly its size.
//   - Unmarshal merges the wire format into a message.
//     The UnmarshalOptions type sets the recursion and size limits.
//   - Size reports the size of a message in the wire format.
//
// # Basic message operations
//
//   - Clone makes a deep copy of a message.
//   - Equal compares two messages by their encodings.
//   - Merge combines two messages.
//
// # Unknown fields and extensions
//
// Messages that embed ExtendableMessage keep the fields they do not
// recognize, byte for byte, and re-emit them when marshaled. An Extension
// descriptor gives typed access to such a field: GetExtension decodes the
// stored occurrences on first use and caches the result, and SetExtension,
// ClearExtension and HasExtension modify or inspect it.
//
// # Map fields
//
// MergeMapEntry, SizeMapField and WriteMapField implement the map entry
// encoding for generated code.
package proto

// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"github.com/infiniteloopcloud/protonano/internal/errors"
)

// Cause discriminates the reasons a parse can fail.
type Cause int8

const (
	_ Cause = iota
	// Truncated: the input ended inside a field, or a pushed limit
	// exceeds the enclosing one.
	Truncated
	// NegativeSize: a length prefix or limit decoded as negative.
	NegativeSize
	// MalformedVarint: a varint did not terminate within ten bytes.
	MalformedVarint
	// InvalidTag: a zero tag was read from non-empty input.
	InvalidTag
	// InvalidEndTag: a group or message did not end with the expected tag.
	InvalidEndTag
	// InvalidWireType: a tag carried an undefined or unexpected wire type.
	InvalidWireType
	// RecursionLimitExceeded: messages or groups were nested too deeply.
	RecursionLimitExceeded
	// SizeLimitExceeded: the input is larger than the configured ceiling.
	SizeLimitExceeded
	// InvalidUTF8: a string field held invalid UTF-8.
	InvalidUTF8
)

var causeText = [...]string{
	Truncated:              "unexpected end of input inside a field; the input was truncated or an embedded message misreported its length",
	NegativeSize:           "embedded string or message claimed a negative size",
	MalformedVarint:        "malformed varint",
	InvalidTag:             "invalid tag (zero)",
	InvalidEndTag:          "end tag did not match the expected tag",
	InvalidWireType:        "invalid wire type",
	RecursionLimitExceeded: "message had too many levels of nesting; raise the recursion limit if the input is trusted",
	SizeLimitExceeded:      "message was too large; raise the size limit if the input is trusted",
	InvalidUTF8:            "string field contains invalid UTF-8",
}

func (c Cause) String() string {
	if c > 0 && int(c) < len(causeText) {
		return causeText[c]
	}
	return fmt.Sprintf("<unknown cause %d>", int8(c))
}

// ParseError is the single error kind reported for malformed input.
// Use errors.Is with one of the Err variables to test for a cause.
type ParseError struct {
	Cause Cause
}

func (e *ParseError) Error() string {
	return "proto: " + e.Cause.String()
}

// Is matches any ParseError with the same cause, and the module-wide
// error sentinel.
func (e *ParseError) Is(target error) bool {
	if target == errors.Error {
		return true
	}
	t, ok := target.(*ParseError)
	return ok && t.Cause == e.Cause
}

var (
	ErrTruncated              error = &ParseError{Cause: Truncated}
	ErrNegativeSize           error = &ParseError{Cause: NegativeSize}
	ErrMalformedVarint        error = &ParseError{Cause: MalformedVarint}
	ErrInvalidTag             error = &ParseError{Cause: InvalidTag}
	ErrInvalidEndTag          error = &ParseError{Cause: InvalidEndTag}
	ErrInvalidWireType        error = &ParseError{Cause: InvalidWireType}
	ErrRecursionLimitExceeded error = &ParseError{Cause: RecursionLimitExceeded}
	ErrSizeLimitExceeded      error = &ParseError{Cause: SizeLimitExceeded}
	ErrInvalidUTF8            error = &ParseError{Cause: InvalidUTF8}
)

// ErrOutOfSpace matches every OutOfSpaceError.
var ErrOutOfSpace = errors.New("destination exhausted")

// OutOfSpaceError is returned by a Writer asked to write past its capacity.
// It only happens when the destination was sized incorrectly.
type OutOfSpaceError struct {
	Position int // bytes written before the failing write
	Limit    int // capacity of the destination
}

func (e *OutOfSpaceError) Error() string {
	return fmt.Sprintf("proto: writer ran out of space (pos %d limit %d)", e.Position, e.Limit)
}

func (e *OutOfSpaceError) Is(target error) bool {
	return target == ErrOutOfSpace || target == errors.Error
}

// ErrSpaceLeft matches every SpaceLeftError.
var ErrSpaceLeft = errors.New("destination not filled")

// SpaceLeftError is returned by CheckNoSpaceLeft when fewer bytes were
// written than the destination holds, which means a size was misreported.
type SpaceLeftError struct {
	Left int // bytes still unwritten
}

func (e *SpaceLeftError) Error() string {
	return fmt.Sprintf("proto: did not write as much data as expected, %d bytes left", e.Left)
}

func (e *SpaceLeftError) Is(target error) bool {
	return target == ErrSpaceLeft || target == errors.Error
}

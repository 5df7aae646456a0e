// Package common holds the byte-level primitives behind staticstr: boundary
// checks, in-place shifting, UTF-8 scalar encoding and boundary truncation.
// Only the Check* functions validate; everything else panics with a
// *ContractViolation when its preconditions do not hold.
package common

import "errors"

var (
	ErrOutOfBounds         = errors.New("out of bounds")
	ErrInvalidUTF8Boundary = errors.New("index is not a utf-8 char boundary")
	ErrInvalidUTF8         = errors.New("invalid utf-8")
	ErrInvalidScalar       = errors.New("rune is not a unicode scalar value")
)

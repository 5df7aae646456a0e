// Package staticstr provides String, a UTF-8 string with a fixed capacity
// whose bytes live inline in the value instead of on the heap.
//
// Every mutating method validates its arguments first and only then calls
// the unchecked byte primitives in internal/common, so invalid offsets and
// oversized input come back as errors rather than panics.
package staticstr

import (
	"unicode/utf8"
	"unsafe"

	"github.com/rawbytedev/staticstr/internal/common"
)

var (
	ErrOutOfBounds         = common.ErrOutOfBounds
	ErrInvalidUTF8Boundary = common.ErrInvalidUTF8Boundary
	ErrInvalidUTF8         = common.ErrInvalidUTF8
	ErrInvalidScalar       = common.ErrInvalidScalar
)

// Array lists the supported backing arrays; the array length is the capacity.
type Array interface {
	~[8]byte | ~[16]byte | ~[23]byte | ~[32]byte | ~[63]byte | ~[64]byte | ~[128]byte | ~[255]byte
}

// String is a fixed-capacity UTF-8 string. The zero value is empty and
// ready to use. Bytes past Len are unspecified, so compare with Equal
// rather than ==.
type String[A Array] struct {
	data A
	size int
}

type (
	Small = String[[23]byte]
	Cache = String[[63]byte]
	Max   = String[[255]byte]
)

func New[A Array]() String[A] {
	return String[A]{}
}

// TryFrom copies s into a new String, failing with ErrOutOfBounds if it
// does not fit.
func TryFrom[A Array](s string) (String[A], error) {
	var out String[A]
	err := out.TryPushString(s)
	return out, err
}

// FromTruncate copies as much of s as fits, cutting on a char boundary.
func FromTruncate[A Array](s string) (String[A], error) {
	var out String[A]
	err := out.PushStringTruncate(s)
	return out, err
}

// TryFromUTF8 validates b and copies it into a new String.
func TryFromUTF8[A Array](b []byte) (String[A], error) {
	var out String[A]
	if !utf8.Valid(b) {
		return out, ErrInvalidUTF8
	}
	if err := common.CheckSizeWithinLimit(len(b), out.Cap()); err != nil {
		return out, err
	}
	out.size = copy(out.buf(), b)
	return out, nil
}

// FromUTF8Truncate is TryFromUTF8 that keeps the longest prefix that fits.
func FromUTF8Truncate[A Array](b []byte) (String[A], error) {
	var out String[A]
	if !utf8.Valid(b) {
		return out, ErrInvalidUTF8
	}
	out.size = copy(out.buf(), common.TruncateToBoundary(b, out.Cap()))
	return out, nil
}

func TryFromRunes[A Array](rs []rune) (String[A], error) {
	var out String[A]
	for _, r := range rs {
		if err := out.TryPush(r); err != nil {
			return String[A]{}, err
		}
	}
	return out, nil
}

// buf is the whole backing array as a slice, live prefix and spare room.
func (s *String[A]) buf() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.data)), len(s.data))
}

// live is the valid prefix; the view aliases s.
func (s *String[A]) live() []byte {
	return s.buf()[:s.size]
}

// view aliases the live prefix as a string without copying. It must not
// outlive the next mutation of s.
func (s *String[A]) view() string {
	if s.size == 0 {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Pointer(&s.data)), s.size)
}

func (s String[A]) String() string {
	return string(s.live())
}

// Bytes returns a copy of the live bytes.
func (s String[A]) Bytes() []byte {
	out := make([]byte, s.size)
	copy(out, s.live())
	return out
}

// AppendTo appends the live bytes to dst.
func (s *String[A]) AppendTo(dst []byte) []byte {
	return append(dst, s.live()...)
}

func (s String[A]) Runes() []rune {
	return []rune(s.view())
}

func (s *String[A]) Len() int {
	return s.size
}

func (s *String[A]) Cap() int {
	return len(s.data)
}

func (s *String[A]) IsEmpty() bool {
	return s.size == 0
}

func (s *String[A]) IsFull() bool {
	return s.size == len(s.data)
}

func (s *String[A]) RemainingCap() int {
	return len(s.data) - s.size
}

// Equal compares live bytes only.
func (s *String[A]) Equal(other *String[A]) bool {
	return s.view() == other.view()
}

func (s *String[A]) EqualString(other string) bool {
	return s.view() == other
}

package staticstr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rawbytedev/staticstr/internal/common"
)

// checkRange validates [start, end) against the live text.
func (s *String[A]) checkRange(start, end int) error {
	if start < 0 || start > end {
		return ErrOutOfBounds
	}
	if err := common.CheckSizeWithinLimit(end, s.size); err != nil {
		return err
	}
	if err := common.CheckCharBoundary(s.live(), start); err != nil {
		return err
	}
	return common.CheckCharBoundary(s.live(), end)
}

// checkIndex validates a single insertion or removal offset.
func (s *String[A]) checkIndex(idx int) error {
	if idx < 0 {
		return ErrOutOfBounds
	}
	if err := common.CheckSizeWithinLimit(idx, s.size); err != nil {
		return err
	}
	return common.CheckCharBoundary(s.live(), idx)
}

// TryPush appends r. s is unchanged on error.
func (s *String[A]) TryPush(r rune) error {
	if !common.ValidScalar(r) {
		return ErrInvalidScalar
	}
	if err := common.CheckSizeWithinLimit(s.size+common.EncodedLen(r), s.Cap()); err != nil {
		return err
	}
	s.size += common.EncodeScalarAt(s.buf(), s.size, r, s.size)
	return nil
}

// TryPushString appends str. s is unchanged on error.
func (s *String[A]) TryPushString(str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	if err := common.CheckSizeWithinLimit(s.size+len(str), s.Cap()); err != nil {
		return err
	}
	s.size += copy(s.buf()[s.size:], str)
	return nil
}

// PushStringTruncate appends the longest prefix of str that fits. It only
// fails when str is not valid UTF-8.
func (s *String[A]) PushStringTruncate(str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	str = common.TruncateToBoundary(str, s.RemainingCap())
	s.size += copy(s.buf()[s.size:], str)
	return nil
}

// Pop removes and returns the last character.
func (s *String[A]) Pop() (rune, bool) {
	if s.size == 0 {
		return 0, false
	}
	r, n := utf8.DecodeLastRune(s.live())
	s.size -= n
	return r, true
}

// Truncate shortens s to n bytes. n must be a char boundary no larger than Len.
func (s *String[A]) Truncate(n int) error {
	if err := s.checkIndex(n); err != nil {
		return err
	}
	s.size = n
	return nil
}

func (s *String[A]) Clear() {
	s.size = 0
}

// TryInsert inserts r at byte offset idx.
func (s *String[A]) TryInsert(idx int, r rune) error {
	if !common.ValidScalar(r) {
		return ErrInvalidScalar
	}
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	n := common.EncodedLen(r)
	if err := common.CheckSizeWithinLimit(s.size+n, s.Cap()); err != nil {
		return err
	}
	buf := s.buf()
	common.OpenGap(buf, s.size, idx, idx+n)
	common.EncodeScalarAt(buf, s.size, r, idx)
	s.size += n
	return nil
}

// TryInsertString inserts str at byte offset idx.
func (s *String[A]) TryInsertString(idx int, str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	if err := common.CheckSizeWithinLimit(s.size+len(str), s.Cap()); err != nil {
		return err
	}
	s.insertUnchecked(idx, str)
	return nil
}

// InsertStringTruncate inserts as much of str at idx as fits.
func (s *String[A]) InsertStringTruncate(idx int, str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	s.insertUnchecked(idx, common.TruncateToBoundary(str, s.RemainingCap()))
	return nil
}

func (s *String[A]) insertUnchecked(idx int, str string) {
	buf := s.buf()
	common.OpenGap(buf, s.size, idx, idx+len(str))
	copy(buf[idx:], str)
	s.size += len(str)
}

// Remove deletes and returns the character starting at idx.
func (s *String[A]) Remove(idx int) (rune, error) {
	if err := s.checkIndex(idx); err != nil {
		return 0, err
	}
	if idx == s.size {
		return 0, ErrOutOfBounds
	}
	r, n := utf8.DecodeRune(s.live()[idx:])
	if r == utf8.RuneError && n <= 1 {
		common.Never("live prefix holds invalid utf-8")
	}
	common.CloseGap(s.buf(), s.size, idx+n, idx)
	s.size -= n
	return r, nil
}

// Drain removes the byte range [start, end) and returns it.
func (s *String[A]) Drain(start, end int) (string, error) {
	if err := s.checkRange(start, end); err != nil {
		return "", err
	}
	out := string(s.live()[start:end])
	common.CloseGap(s.buf(), s.size, end, start)
	s.size -= end - start
	return out, nil
}

// ReplaceRange replaces the byte range [start, end) with with.
func (s *String[A]) ReplaceRange(start, end int, with string) error {
	if !utf8.ValidString(with) {
		return ErrInvalidUTF8
	}
	if err := s.checkRange(start, end); err != nil {
		return err
	}
	newSize := s.size - (end - start) + len(with)
	if err := common.CheckSizeWithinLimit(newSize, s.Cap()); err != nil {
		return err
	}

	buf := s.buf()
	gapEnd := start + len(with)
	switch {
	case gapEnd > end:
		common.OpenGap(buf, s.size, end, gapEnd)
	case gapEnd < end:
		common.CloseGap(buf, s.size, end, gapEnd)
	}
	copy(buf[start:], with)
	s.size = newSize
	return nil
}

// SplitOff cuts s at byte offset at and returns the tail as a new String.
func (s *String[A]) SplitOff(at int) (String[A], error) {
	var tail String[A]
	if err := s.checkIndex(at); err != nil {
		return tail, err
	}
	tail.size = copy(tail.buf(), s.live()[at:])
	s.size = at
	return tail, nil
}

// Retain keeps only the characters for which keep returns true.
func (s *String[A]) Retain(keep func(rune) bool) {
	buf := s.buf()
	write := 0
	for read := 0; read < s.size; {
		r, n := utf8.DecodeRune(buf[read:s.size])
		if keep(r) {
			common.MoveBytes(buf, read, write, n)
			write += n
		}
		read += n
	}
	s.size = write
}

// TrimSpace removes leading and trailing white space in place.
func (s *String[A]) TrimSpace() {
	text := s.view()
	end := len(strings.TrimRightFunc(text, unicode.IsSpace))
	start := end - len(strings.TrimLeftFunc(text[:end], unicode.IsSpace))
	s.size = end
	if start > 0 {
		common.CloseGap(s.buf(), s.size, start, 0)
		s.size -= start
	}
}

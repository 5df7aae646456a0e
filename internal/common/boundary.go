package common

// Text is satisfied by both string data and raw byte buffers.
type Text interface {
	~string | ~[]byte
}

// IsCharBoundary reports whether index is 0, len(s), or the first byte of
// an encoded character in s. Indexes outside [0, len(s)] are never boundaries.
func IsCharBoundary[S Text](s S, index int) bool {
	if index == 0 {
		return true
	}
	if index < 0 || index > len(s) {
		return false
	}
	if index == len(s) {
		return true
	}
	// continuation bytes look like 0b10xxxxxx
	return s[index]&0xC0 != 0x80
}

// CheckSizeWithinLimit returns ErrOutOfBounds if size is above limit.
func CheckSizeWithinLimit(size, limit int) error {
	if size <= limit {
		return nil
	}
	return ErrOutOfBounds
}

// CheckCharBoundary returns ErrInvalidUTF8Boundary unless index is a char
// boundary of the live text b.
func CheckCharBoundary[S Text](b S, index int) error {
	if IsCharBoundary(b, index) {
		return nil
	}
	return ErrInvalidUTF8Boundary
}

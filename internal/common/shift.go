package common

// MoveBytes copies length bytes from buf[from:] to buf[to:]. The ranges may
// overlap. buf is the whole capacity, not only the live prefix.
func MoveBytes(buf []byte, from, to, length int) {
	expect(from >= 0 && to >= 0 && length >= 0, "MoveBytes", "negative offset or length")
	expect(from+length <= len(buf) && to+length <= len(buf), "MoveBytes", "range exceeds capacity")
	copy(buf[to:to+length], buf[from:from+length])
}

// OpenGap moves the live tail buf[from:size] right so it starts at to,
// leaving buf[from:to] for the caller to fill. size is not updated here.
//
// Preconditions: from <= to, from is a char boundary of buf[:size], and
// to+(size-from) <= len(buf).
func OpenGap(buf []byte, size, from, to int) {
	expect(size >= 0 && size <= len(buf), "OpenGap", "length exceeds capacity")
	expect(from <= to, "OpenGap", "gap end is before gap start")
	expect(IsCharBoundary(buf[:size], from), "OpenGap", "offset is not a char boundary")
	tail := size - from
	expect(to+tail <= len(buf), "OpenGap", "shifted tail exceeds capacity")
	MoveBytes(buf, from, to, tail)
}

// CloseGap moves the live tail buf[from:size] left so it starts at to,
// dropping buf[to:from]. size is not updated here.
//
// Preconditions: to <= from <= size and from is a char boundary of buf[:size].
func CloseGap(buf []byte, size, from, to int) {
	expect(size >= 0 && size <= len(buf), "CloseGap", "length exceeds capacity")
	expect(to >= 0 && to <= from && from <= size, "CloseGap", "offsets out of order")
	expect(IsCharBoundary(buf[:size], from), "CloseGap", "offset is not a char boundary")
	MoveBytes(buf, from, to, size-from)
}

package common

// TruncateToBoundary returns the longest prefix of s that is at most size
// bytes and does not end inside a character. It never allocates.
func TruncateToBoundary[S Text](s S, size int) S {
	if size <= 0 {
		return s[:0]
	}
	if IsCharBoundary(s, size) {
		return s[:size]
	}
	if size >= len(s) {
		return s
	}
	// index 0 is always a boundary so this stops
	idx := size - 1
	for !IsCharBoundary(s, idx) {
		idx--
	}
	return s[:idx]
}

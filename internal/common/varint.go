package common

// WriteVarUintTo appends varint-encoded x to dst using a small stack scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [10]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// n is 0 when b ends mid-varint or the value overflows 64 bits.
func ReadVarUint(b []byte) (x uint64, n int) {
	var s uint
	for i, c := range b {
		if i == 9 && c > 1 {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}

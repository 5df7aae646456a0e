package common

const (
	tagCont  = 0b1000_0000
	tagTwo   = 0b1100_0000
	tagThree = 0b1110_0000
	tagFour  = 0b1111_0000

	maxOne   = 0x80
	maxTwo   = 0x800
	maxThree = 0x10000

	MaxScalar    = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// ValidScalar reports whether r is a Unicode scalar value, i.e. in range
// and not a surrogate.
func ValidScalar(r rune) bool {
	return r >= 0 && r <= MaxScalar && !(r >= surrogateMin && r <= surrogateMax)
}

// EncodedLen returns how many bytes EncodeScalarAt writes for r.
func EncodedLen(r rune) int {
	code := uint32(r)
	switch {
	case code < maxOne:
		return 1
	case code < maxTwo:
		return 2
	case code < maxThree:
		return 3
	default:
		return 4
	}
}

// EncodeScalarAt writes the UTF-8 encoding of r into buf at index and
// returns the number of bytes written. size is the caller's logical length
// before the write; neither it nor the bytes after the encoding are touched.
//
// r must already be a valid scalar (see ValidScalar), index+EncodedLen(r)
// and size+EncodedLen(r) must fit in len(buf), and index must not split an
// existing character. Nothing here returns an error.
func EncodeScalarAt(buf []byte, size int, r rune, index int) int {
	n := EncodedLen(r)
	expect(index >= 0 && index+n <= len(buf), "EncodeScalarAt", "index out of capacity")
	expect(size+n <= len(buf), "EncodeScalarAt", "length would exceed capacity")
	dst := buf[index : index+n : index+n]
	code := uint32(r)

	switch n {
	case 1:
		dst[0] = byte(code)
	case 2:
		dst[0] = byte(code>>6&0x1F) | tagTwo
		dst[1] = byte(code&0x3F) | tagCont
	case 3:
		dst[0] = byte(code>>12&0x0F) | tagThree
		dst[1] = byte(code>>6&0x3F) | tagCont
		dst[2] = byte(code&0x3F) | tagCont
	default:
		dst[0] = byte(code>>18&0x07) | tagFour
		dst[1] = byte(code>>12&0x3F) | tagCont
		dst[2] = byte(code>>6&0x3F) | tagCont
		dst[3] = byte(code&0x3F) | tagCont
	}
	return n
}

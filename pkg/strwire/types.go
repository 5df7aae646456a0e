// Package strwire frames sequences of static strings for storage or
// transport. A frame is
//
//	magic(2) type(1) length(4) flags(1) payload crc32(4)
//
// where length counts the whole frame and the CRC covers everything from
// the type byte through the payload. The payload is a varint record count
// followed by varint-length-prefixed UTF-8 records, optionally zstd
// compressed behind a varint of its uncompressed size.
package strwire

import (
	"bytes"
	"errors"

	"github.com/klauspost/compress/zstd"
)

const (
	Magic0 = 0x53 // 'S'
	Magic1 = 0x53

	TypeStrings byte = 0x01

	FlagZstd byte = 0x01

	preambleSize = 3
	headerSize   = preambleSize + 4 + 1
	crcSize      = 4

	// DefaultMaxPayload bounds the decompressed payload when
	// Decoder.MaxPayload is zero.
	DefaultMaxPayload = 16 << 20
)

var (
	ErrNotFrame        = errors.New("not a strings frame")
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrCRCMismatch     = errors.New("crc mismatch")
	ErrShortPayload    = errors.New("payload truncated")
	ErrPayloadTooLarge = errors.New("payload too large")
)

// Encoder builds frames. The returned slice is reused by the next call.
type Encoder struct {
	Compress bool // zstd the payload

	buf     *bytes.Buffer
	payload []byte
	zenc    *zstd.Encoder
}

// Decoder parses frames.
type Decoder struct {
	// Truncate shortens records that exceed the target capacity instead of
	// failing with ErrOutOfBounds.
	Truncate bool
	// MaxPayload caps the declared uncompressed size of a zstd payload.
	// Zero means DefaultMaxPayload. The zstd reader is built on first use,
	// so later changes do not move its memory limit.
	MaxPayload int

	rdr  *bytes.Reader
	raw  []byte
	zdec *zstd.Decoder
}

func writePreamble(buf *bytes.Buffer, t byte) {
	buf.WriteByte(Magic0)
	buf.WriteByte(Magic1)
	buf.WriteByte(t)
}

func readPreamble(r *bytes.Reader) (byte, error) {
	var p [preambleSize]byte
	if _, err := r.Read(p[:]); err != nil {
		return 0, err
	}
	if p[0] != Magic0 || p[1] != Magic1 {
		return 0, ErrNotFrame
	}
	return p[2], nil
}

package strwire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"

	"github.com/rawbytedev/staticstr"
	"github.com/rawbytedev/staticstr/internal/common"
)

// payload checks framing and CRC and returns the uncompressed payload.
func (d *Decoder) payload(data []byte) ([]byte, error) {
	if len(data) < headerSize+crcSize {
		return nil, ErrNotFrame
	}
	d.rdr = bytes.NewReader(data)
	t, err := readPreamble(d.rdr)
	if err != nil || t != TypeStrings {
		return nil, ErrNotFrame
	}

	var length uint32
	binary.Read(d.rdr, binary.LittleEndian, &length)
	if int(length) != len(data) {
		return nil, ErrLengthMismatch
	}
	flags, _ := d.rdr.ReadByte()

	end := len(data) - crcSize
	want := binary.LittleEndian.Uint32(data[end:])
	if crc32.ChecksumIEEE(data[2:end]) != want {
		return nil, ErrCRCMismatch
	}

	payload := data[headerSize:end]
	if flags&FlagZstd != 0 {
		return d.decompress(payload)
	}
	return payload, nil
}

// records splits a payload into its records; they alias payload.
func records(payload []byte) ([][]byte, error) {
	count, n := common.ReadVarUint(payload)
	if n == 0 {
		return nil, ErrShortPayload
	}
	pos := n
	// each record needs at least its length byte
	if count > uint64(len(payload)-pos) {
		return nil, ErrShortPayload
	}
	out := make([][]byte, 0, int(count))
	for i := uint64(0); i < count; i++ {
		l, n := common.ReadVarUint(payload[pos:])
		if n == 0 || l > uint64(len(payload)-pos-n) {
			return nil, ErrShortPayload
		}
		pos += n
		out = append(out, payload[pos:pos+int(l)])
		pos += int(l)
	}
	if pos != len(payload) {
		return nil, ErrLengthMismatch
	}
	return out, nil
}

// DecodeStrings parses a frame into plain strings.
func (d *Decoder) DecodeStrings(data []byte) ([]string, error) {
	payload, err := d.payload(data)
	if err != nil {
		return nil, err
	}
	recs, err := records(payload)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(recs))
	for i, rec := range recs {
		if !utf8.Valid(rec) {
			return nil, fmt.Errorf("record %d: %w", i, staticstr.ErrInvalidUTF8)
		}
		out[i] = string(rec)
	}
	return out, nil
}

// DecodeInto parses a frame into static strings of capacity len(A).
func DecodeInto[A staticstr.Array](d *Decoder, data []byte) ([]staticstr.String[A], error) {
	payload, err := d.payload(data)
	if err != nil {
		return nil, err
	}
	recs, err := records(payload)
	if err != nil {
		return nil, err
	}
	out := make([]staticstr.String[A], len(recs))
	for i, rec := range recs {
		if d.Truncate {
			out[i], err = staticstr.FromUTF8Truncate[A](rec)
		} else {
			out[i], err = staticstr.TryFromUTF8[A](rec)
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return out, nil
}

package strwire

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/rawbytedev/staticstr"
	"github.com/rawbytedev/staticstr/internal/common"
)

// EncodeStrings serializes ss into one frame.
func (e *Encoder) EncodeStrings(ss []string) ([]byte, error) {
	e.payload = common.WriteVarUintTo(e.payload[:0], uint64(len(ss)))
	for _, s := range ss {
		e.payload = common.WriteVarUintTo(e.payload, uint64(len(s)))
		e.payload = append(e.payload, s...)
	}
	return e.frame(e.payload)
}

// Encode serializes static strings without converting them to string first.
func Encode[A staticstr.Array](e *Encoder, ss []staticstr.String[A]) ([]byte, error) {
	e.payload = common.WriteVarUintTo(e.payload[:0], uint64(len(ss)))
	for i := range ss {
		e.payload = common.WriteVarUintTo(e.payload, uint64(ss[i].Len()))
		e.payload = ss[i].AppendTo(e.payload)
	}
	return e.frame(e.payload)
}

func (e *Encoder) frame(payload []byte) ([]byte, error) {
	var flags byte
	if e.Compress {
		comp, err := e.compress(payload)
		if err != nil {
			return nil, err
		}
		payload = comp
		flags |= FlagZstd
	}

	if e.buf == nil {
		e.buf = &bytes.Buffer{}
	}
	e.buf.Reset()
	writePreamble(e.buf, TypeStrings)
	// length placeholder
	binary.Write(e.buf, binary.LittleEndian, uint32(0))
	e.buf.WriteByte(flags)
	e.buf.Write(payload)

	out := e.buf.Bytes()
	binary.LittleEndian.PutUint32(out[preambleSize:], uint32(len(out)+crcSize))
	crc := crc32.ChecksumIEEE(out[2:])
	out = binary.LittleEndian.AppendUint32(out, crc)
	return out, nil
}

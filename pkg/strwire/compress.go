package strwire

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/staticstr/internal/common"
)

// compress returns varint(len(raw)) followed by the zstd frame of raw.
func (e *Encoder) compress(raw []byte) ([]byte, error) {
	if e.zenc == nil {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		e.zenc = enc
	}
	out := common.WriteVarUintTo(nil, uint64(len(raw)))
	return e.zenc.EncodeAll(raw, out), nil
}

func (d *Decoder) decompress(payload []byte) ([]byte, error) {
	want, n := common.ReadVarUint(payload)
	if n == 0 {
		return nil, ErrShortPayload
	}
	limit := d.maxPayload()
	if want > uint64(limit) {
		return nil, ErrPayloadTooLarge
	}
	if d.zdec == nil {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(uint64(limit)))
		if err != nil {
			return nil, err
		}
		d.zdec = dec
	}
	if cap(d.raw) > limit {
		d.raw = nil
	}
	raw, err := d.zdec.DecodeAll(payload[n:], d.raw[:0])
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	d.raw = raw
	if uint64(len(raw)) != want {
		return nil, ErrLengthMismatch
	}
	return raw, nil
}

func (d *Decoder) maxPayload() int {
	if d.MaxPayload > 0 {
		return d.MaxPayload
	}
	return DefaultMaxPayload
}

package strwire

import (
	"encoding/binary"
	"hash/crc32"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/staticstr"
	"github.com/rawbytedev/staticstr/internal/common"
)

func TestRoundTrip(t *testing.T) {
	in := []string{"", "a", "a🤔", strings.Repeat("é", 100)}
	for _, compress := range []bool{false, true} {
		e := &Encoder{Compress: compress}
		data, err := e.EncodeStrings(in)
		require.NoError(t, err)
		var d Decoder
		out, err := d.DecodeStrings(data)
		require.NoError(t, err)
		assert.Equal(t, in, out, "compress=%v", compress)
	}
}

func TestRoundTripQuick(t *testing.T) {
	e := &Encoder{}
	var d Decoder
	condition := func(in []string) bool {
		data, err := e.EncodeStrings(in)
		require.NoError(t, err)
		out, err := d.DecodeStrings(data)
		require.NoError(t, err)
		if len(in) == 0 {
			return len(out) == 0
		}
		return assert.ObjectsAreEqual(in, out)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestHeader(t *testing.T) {
	e := &Encoder{Compress: true}
	data, err := e.EncodeStrings([]string{"hello"})
	require.NoError(t, err)
	assert.Equal(t, byte(Magic0), data[0])
	assert.Equal(t, byte(Magic1), data[1])
	assert.Equal(t, TypeStrings, data[2])
	assert.Equal(t, uint32(len(data)), binary.LittleEndian.Uint32(data[3:]))
	assert.Equal(t, FlagZstd, data[7]&FlagZstd)
}

func TestStaticRoundTrip(t *testing.T) {
	var in []staticstr.Small
	for _, s := range []string{"one", "dos", "三", "🤔🤔"} {
		v, err := staticstr.TryFrom[[23]byte](s)
		require.NoError(t, err)
		in = append(in, v)
	}
	e := &Encoder{Compress: true}
	data, err := Encode(e, in)
	require.NoError(t, err)

	var d Decoder
	out, err := DecodeInto[[23]byte](&d, data)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.True(t, in[i].Equal(&out[i]), "record %d", i)
	}
}

func TestDecodeCapacity(t *testing.T) {
	e := &Encoder{}
	data, err := e.EncodeStrings([]string{"ok", "🤔🤔🤔"})
	require.NoError(t, err)

	var strict Decoder
	_, err = DecodeInto[[8]byte](&strict, data)
	require.ErrorIs(t, err, staticstr.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "record 1")

	loose := Decoder{Truncate: true}
	out, err := DecodeInto[[8]byte](&loose, data)
	require.NoError(t, err)
	assert.Equal(t, "🤔🤔", out[1].String())
}

func TestDecodeErrors(t *testing.T) {
	e := &Encoder{}
	good, err := e.EncodeStrings([]string{"payload"})
	require.NoError(t, err)
	frame := func() []byte { return append([]byte(nil), good...) }
	var d Decoder

	_, err = d.DecodeStrings([]byte{Magic0})
	require.ErrorIs(t, err, ErrNotFrame)

	bad := frame()
	bad[0] = 'X'
	_, err = d.DecodeStrings(bad)
	require.ErrorIs(t, err, ErrNotFrame)

	bad = frame()
	bad[2] = 0x7F
	_, err = d.DecodeStrings(bad)
	require.ErrorIs(t, err, ErrNotFrame)

	_, err = d.DecodeStrings(frame()[:len(good)-1])
	require.ErrorIs(t, err, ErrLengthMismatch)

	bad = frame()
	bad[headerSize+2] ^= 0x20
	_, err = d.DecodeStrings(bad)
	require.ErrorIs(t, err, ErrCRCMismatch)
}

// reframe wraps a raw payload in a valid frame.
func reframe(t *testing.T, payload []byte) []byte {
	t.Helper()
	e := &Encoder{}
	data, err := e.frame(payload)
	require.NoError(t, err)
	return append([]byte(nil), data...)
}

func TestDecodeBadPayload(t *testing.T) {
	var d Decoder
	// claims two records, carries one
	_, err := d.DecodeStrings(reframe(t, []byte{2, 1, 'a'}))
	require.ErrorIs(t, err, ErrShortPayload)

	// record length runs past the end
	_, err = d.DecodeStrings(reframe(t, []byte{1, 9, 'a'}))
	require.ErrorIs(t, err, ErrShortPayload)

	// trailing garbage
	_, err = d.DecodeStrings(reframe(t, []byte{1, 1, 'a', 'b'}))
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = d.DecodeStrings(reframe(t, []byte{1, 1, 0xFF}))
	require.ErrorIs(t, err, staticstr.ErrInvalidUTF8)
}

// zstdFrame marks a reframed payload as compressed without compressing it.
func zstdFrame(t *testing.T, payload []byte) []byte {
	t.Helper()
	data := reframe(t, payload)
	data[headerSize-1] = FlagZstd
	body := len(data) - crcSize
	binary.LittleEndian.PutUint32(data[body:], crc32.ChecksumIEEE(data[2:body]))
	return data
}

func TestDecodePayloadLimit(t *testing.T) {
	big := strings.Repeat("a", 4096)
	e := &Encoder{Compress: true}
	data, err := e.EncodeStrings([]string{big})
	require.NoError(t, err)
	require.Less(t, len(data), 1024)

	d := Decoder{MaxPayload: 1024}
	_, err = d.DecodeStrings(data)
	require.ErrorIs(t, err, ErrPayloadTooLarge)
	_, err = DecodeInto[[16]byte](&d, data)
	require.ErrorIs(t, err, ErrPayloadTooLarge)

	var def Decoder
	out, err := def.DecodeStrings(data)
	require.NoError(t, err)
	assert.Equal(t, []string{big}, out)

	// a few bytes declaring a terabyte are refused before zstd runs
	huge := common.WriteVarUintTo(nil, 1<<40)
	huge = append(huge, 0x28, 0xB5, 0x2F, 0xFD)
	_, err = def.DecodeStrings(zstdFrame(t, huge))
	require.ErrorIs(t, err, ErrPayloadTooLarge)

	_, err = def.DecodeStrings(zstdFrame(t, []byte{0x80}))
	require.ErrorIs(t, err, ErrShortPayload)
}

func TestFixtureFromYAML(t *testing.T) {
	fixture := []byte(`
- greeting
- "🤔 with emoji"
- ""
`)
	var in []staticstr.Cache
	require.NoError(t, yaml.Unmarshal(fixture, &in))
	e := &Encoder{Compress: true}
	data, err := Encode(e, in)
	require.NoError(t, err)
	var d Decoder
	out, err := d.DecodeStrings(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"greeting", "🤔 with emoji", ""}, out)
}

func FuzzDecode(f *testing.F) {
	e := &Encoder{}
	seed, _ := e.EncodeStrings([]string{"a", "🤔"})
	f.Add(append([]byte(nil), seed...))
	f.Add([]byte{Magic0, Magic1, TypeStrings})
	f.Fuzz(func(t *testing.T, data []byte) {
		var d Decoder
		_, _ = DecodeInto[[16]byte](&d, data)
	})
}

func BenchmarkEncode(b *testing.B) {
	in := make([]staticstr.Cache, 16)
	for i := range in {
		in[i], _ = staticstr.FromTruncate[[63]byte](strings.Repeat("abc🤔", i))
	}
	e := &Encoder{}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(e, in)
	}
}

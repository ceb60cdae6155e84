package wire_test

import (
	"math"
	"testing"
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorIntegerRoundTrip(t *testing.T) {
	w := wire.NewWriteCursor()
	w.WriteU8(0xAB)
	w.WriteI8(-7)
	w.WriteU16(0xBEEF)
	w.WriteI16(-1000)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-123456)

	r := wire.NewCursor(w.Bytes())

	u8, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), u8)

	i8, err := r.ReadI8()
	require.NoError(t, err)
	assert.Equal(t, int8(-7), i8)

	u16, err := r.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	i16, err := r.ReadI16()
	require.NoError(t, err)
	assert.Equal(t, int16(-1000), i16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	i32, err := r.ReadI32()
	require.NoError(t, err)
	assert.Equal(t, int32(-123456), i32)

	assert.Equal(t, 0, r.Remaining())
}

func TestCursorFloatRoundTrip(t *testing.T) {
	w := wire.NewWriteCursor()
	w.WriteF32(21.5)
	w.WriteF32(float32(math.NaN()))

	r := wire.NewCursor(w.Bytes())

	v, err := r.ReadF32()
	require.NoError(t, err)
	assert.InDelta(t, 21.5, v, 0.0001)

	absent, err := r.ReadF32()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(absent)), "NaN must decode as sensor-absent, not an error")
}

func TestCursorStringRoundTrip(t *testing.T) {
	w := wire.NewWriteCursor()
	require.NoError(t, w.WriteString("ecoMAX 850i"))

	r := wire.NewCursor(w.Bytes())
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "ecoMAX 850i", s)
}

func TestCursorVarBytesRoundTrip(t *testing.T) {
	w := wire.NewWriteCursor()
	payload := []byte{0x01, 0x02, 0x03, 0xFF}
	require.NoError(t, w.WriteVarBytes(payload))

	r := wire.NewCursor(w.Bytes())
	b, err := r.ReadVarBytes()
	require.NoError(t, err)
	assert.Equal(t, payload, b)
}

func TestCursorShortBufferError(t *testing.T) {
	r := wire.NewCursor([]byte{0x01})
	_, err := r.ReadU32()
	require.ErrorIs(t, err, wire.ErrShortBuffer)
}

func TestCursorSeek(t *testing.T) {
	r := wire.NewCursor([]byte{0x01, 0x02, 0x03})
	require.NoError(t, r.Seek(2))
	assert.Equal(t, 2, r.Pos())

	err := r.Seek(10)
	require.Error(t, err)
}

func TestBitStreamRoundTrip(t *testing.T) {
	w := wire.NewWriteCursor()
	bits := []bool{true, false, true, true, false, false, false, true, true, false}
	bw := wire.NewBitWriter(w)
	for _, b := range bits {
		bw.WriteBit(b)
	}
	bw.Flush()

	r := wire.NewCursor(w.Bytes())
	br := wire.NewBitReader(r)
	for i, want := range bits {
		got, err := br.ReadBit()
		require.NoError(t, err)
		assert.Equal(t, want, got, "bit %d", i)
	}
}

func TestVersionRoundTrip(t *testing.T) {
	w := wire.NewWriteCursor()
	v := wire.Version{Major: 1, Minor: 14, Patch: 9}
	w.WriteVersion(v)

	r := wire.NewCursor(w.Bytes())
	got, err := r.ReadVersion()
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Equal(t, "1.14.9", got.String())
}

func TestTimestampRoundTrip(t *testing.T) {
	w := wire.NewWriteCursor()
	ts := time.Unix(1_700_000_000, 0).UTC()
	w.WriteTimestamp(ts)

	r := wire.NewCursor(w.Bytes())
	got, err := r.ReadTimestamp()
	require.NoError(t, err)
	assert.Equal(t, ts.Unix(), got.Unix())
}

func TestEncodeUIDIsDeterministicAndStable(t *testing.T) {
	raw := string([]byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80, 0x90, 0xA0, 0xB0, 0xC0})

	first := wire.EncodeUID(raw)
	second := wire.EncodeUID(raw)

	assert.Equal(t, first, second, "encoding the same raw UID must always produce the same string")
	assert.NotEmpty(t, first)
	for _, c := range first {
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'A' && c <= 'V') || c == 'Z',
			"unexpected UID character %q", c)
	}
}

func TestReadUID(t *testing.T) {
	w := wire.NewWriteCursor()
	raw := []byte{0x01, 0x02, 0x03, 0x04}
	require.NoError(t, w.WriteVarBytes(raw))

	r := wire.NewCursor(w.Bytes())
	uid, err := r.ReadUID()
	require.NoError(t, err)
	assert.Equal(t, wire.EncodeUID(string(raw)), uid)
}

package stopbit

import (
	"testing"

	"github.com/samholt/fastenc/internal/pool"
	"github.com/stretchr/testify/require"
)

func encodeUint(v uint64) []byte {
	buf := pool.NewByteBuffer(16)
	EncodeUint(buf, v)

	return buf.Bytes()
}

func encodeInt(v int64) []byte {
	buf := pool.NewByteBuffer(16)
	EncodeInt(buf, v)

	return buf.Bytes()
}

func TestEncodeUint_SingleByte(t *testing.T) {
	require.Equal(t, []byte{0x80}, encodeUint(0))
	require.Equal(t, []byte{0xff}, encodeUint(0x7f))
}

func TestEncodeUint_MultiByte(t *testing.T) {
	// 1000 = 0b0000_0111_1110_1000 -> groups (MSB first): 0000111, 1101000
	require.Equal(t, []byte{0x07, 0xe8}, encodeUint(1000))
}

func TestEncodeUint_LargeValue(t *testing.T) {
	got := encodeUint(1 << 40)
	require.NotEmpty(t, got)
	require.Equal(t, byte(0x80), got[len(got)-1]&0x80)
	for _, b := range got[:len(got)-1] {
		require.Zero(t, b&0x80)
	}
}

func TestEncodeInt_SingleByte(t *testing.T) {
	require.Equal(t, []byte{0x80}, encodeInt(0))
	require.Equal(t, []byte{0xff}, encodeInt(-1))
	// -64 is the most negative value a single stop-bit byte can hold.
	require.Equal(t, []byte{0xc0}, encodeInt(-64))
}

func TestEncodeInt_SignBoundaryNeedsSecondByte(t *testing.T) {
	// -65 falls just outside the single-byte range [-64, 63].
	require.Equal(t, []byte{0x7f, 0xbf}, encodeInt(-65))
}

func TestEncodeInt_MultiByte(t *testing.T) {
	require.Equal(t, []byte{0x07, 0xe8}, encodeInt(1000))
	// -1000 = ...11110000 00011000 in two's complement, minimal sign-extended
	// digit sequence is 1111000, 0011000.
	require.Equal(t, []byte{0x78, 0x98}, encodeInt(-1000))
}

func TestEncodeInt_StopBitFramingAcrossSigns(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 63, -64, 64, -65, 1000, -1000, 1 << 40, -(1 << 40)} {
		got := encodeInt(v)
		require.NotEmpty(t, got)
		require.NotZero(t, got[len(got)-1]&0x80)
		for _, b := range got[:len(got)-1] {
			require.Zero(t, b&0x80)
		}
	}
}

func TestEncodeNullableUint(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeNullableUint(buf, 0, false)
	require.Equal(t, []byte{0x80}, buf.Bytes())

	buf.Reset()
	EncodeNullableUint(buf, 0, true)
	require.Equal(t, []byte{0x81}, buf.Bytes())
}

func TestEncodeNullableInt(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeNullableInt(buf, 0, false)
	require.Equal(t, []byte{0x80}, buf.Bytes())

	buf.Reset()
	EncodeNullableInt(buf, 5, true)
	require.Equal(t, encodeInt(6), buf.Bytes())

	buf.Reset()
	EncodeNullableInt(buf, -5, true)
	require.Equal(t, encodeInt(-5), buf.Bytes())
}

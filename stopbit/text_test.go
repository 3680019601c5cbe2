package stopbit

import (
	"testing"

	"github.com/samholt/fastenc/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestEncodeASCII_Empty(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeASCII(buf, "")
	require.Equal(t, []byte{0x80}, buf.Bytes())
}

func TestEncodeASCII_SingleChar(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeASCII(buf, "A")
	require.Equal(t, []byte{'A' | 0x80}, buf.Bytes())
}

func TestEncodeASCII_Multichar(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeASCII(buf, "IBM")
	require.Equal(t, []byte{'I', 'B', 'M' | 0x80}, buf.Bytes())
}

func TestEncodeUnicode_LengthPrefixed(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeUnicode(buf, "hi")
	require.Equal(t, []byte{0x82, 'h', 'i'}, buf.Bytes())
}

func TestEncodeByteVector_LengthPrefixed(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeByteVector(buf, []byte{0x01, 0x02, 0x03})
	require.Equal(t, []byte{0x83, 0x01, 0x02, 0x03}, buf.Bytes())
}

func TestEncodeByteVector_Empty(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeByteVector(buf, nil)
	require.Equal(t, []byte{0x80}, buf.Bytes())
}

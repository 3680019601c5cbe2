package stopbit

import (
	"testing"

	"github.com/samholt/fastenc/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecimal(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeDecimal(buf, Decimal{Exponent: -2, Mantissa: 1000})

	want := pool.NewByteBuffer(16)
	EncodeInt(want, -2)
	EncodeInt(want, 1000)

	require.Equal(t, want.Bytes(), buf.Bytes())
}

func TestEncodeNullableDecimal_Absent(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeNullableDecimal(buf, Decimal{}, false)

	want := pool.NewByteBuffer(16)
	EncodeNullableInt(want, 0, false)

	require.Equal(t, want.Bytes(), buf.Bytes())
}

func TestEncodeNullableDecimal_Present(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	EncodeNullableDecimal(buf, Decimal{Exponent: 3, Mantissa: -7}, true)

	want := pool.NewByteBuffer(16)
	EncodeNullableInt(want, 3, true)
	EncodeInt(want, -7)

	require.Equal(t, want.Bytes(), buf.Bytes())
}

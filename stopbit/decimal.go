package stopbit

import "github.com/samholt/fastenc/internal/pool"

// Decimal is a base-10 floating value represented as mantissa * 10^exponent,
// matching FAST's decimal primitive.
type Decimal struct {
	Exponent int64
	Mantissa int64
}

// EncodeDecimal appends d as a signed stop-bit exponent followed by a signed
// stop-bit mantissa.
func EncodeDecimal(buf *pool.ByteBuffer, d Decimal) {
	EncodeInt(buf, d.Exponent)
	EncodeInt(buf, d.Mantissa)
}

// EncodeNullableDecimal appends an optional decimal. Null is represented by
// encoding the nullable form of the exponent only; the mantissa is omitted
// entirely when absent, matching the field being skipped as a whole.
func EncodeNullableDecimal(buf *pool.ByteBuffer, d Decimal, present bool) {
	EncodeNullableInt(buf, d.Exponent, present)
	if present {
		EncodeInt(buf, d.Mantissa)
	}
}

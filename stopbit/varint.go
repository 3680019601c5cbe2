// Package stopbit implements FAST's stop-bit variable-length primitive
// encodings: unsigned and signed integers, their nullable variants, decimals,
// and the three string/byte-vector wire forms.
//
// Every encoder appends to a caller-owned *pool.ByteBuffer so the codec core
// never allocates a fresh []byte per field.
package stopbit

import "github.com/samholt/fastenc/internal/pool"

// EncodeUint appends the stop-bit encoding of v: a minimal sequence of 7-bit
// groups, most-significant group first, high bit clear on every byte but the
// last, where it is set.
func EncodeUint(buf *pool.ByteBuffer, v uint64) {
	var digits [10]byte // ceil(64/7) = 10
	n := 0
	digits[0] = byte(v & 0x7f)
	v >>= 7
	n++
	for v != 0 {
		digits[n] = byte(v & 0x7f)
		v >>= 7
		n++
	}

	// digits[0..n-1] holds groups least-significant first; emit most
	// significant first, with the stop bit on the last emitted byte
	// (digits[0], the least-significant group).
	for i := n - 1; i >= 0; i-- {
		b := digits[i]
		if i == 0 {
			b |= 0x80
		}
		buf.MustWrite([]byte{b})
	}
}

// EncodeInt appends the stop-bit encoding of v using a minimal, sign-extended
// two's-complement digit sequence (the signed analogue of LEB128), emitted
// most-significant-digit-first with the stop bit on the last emitted
// (least-significant) byte.
func EncodeInt(buf *pool.ByteBuffer, v int64) {
	var digits [10]byte
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7 // arithmetic shift: Go sign-extends signed right shifts
		signBitSet := b&0x40 != 0
		digits[n] = b
		n++
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			break
		}
	}

	for i := n - 1; i >= 0; i-- {
		b := digits[i]
		if i == 0 {
			b |= 0x80
		}
		buf.MustWrite([]byte{b})
	}
}

// EncodeNullableUint appends the stop-bit encoding of an optional unsigned
// value. The wire value is shifted by +1 so that 0 is reserved to mean null;
// present=false ignores v and encodes null.
func EncodeNullableUint(buf *pool.ByteBuffer, v uint64, present bool) {
	if !present {
		EncodeUint(buf, 0)

		return
	}
	EncodeUint(buf, v+1)
}

// EncodeNullableInt appends the stop-bit encoding of an optional signed
// value. Non-negative values are shifted by +1; negative values need no
// shift since they are already distinguishable from the null representation
// (0). present=false ignores v and encodes null.
func EncodeNullableInt(buf *pool.ByteBuffer, v int64, present bool) {
	if !present {
		EncodeInt(buf, 0)

		return
	}
	if v >= 0 {
		EncodeInt(buf, v+1)
	} else {
		EncodeInt(buf, v)
	}
}

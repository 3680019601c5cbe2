package stopbit

import "github.com/samholt/fastenc/internal/pool"

// EncodeASCII appends s with the high bit of its final character set to mark
// the terminator. An empty string encodes as the single byte 0x80.
func EncodeASCII(buf *pool.ByteBuffer, s string) {
	if len(s) == 0 {
		buf.MustWrite([]byte{0x80})

		return
	}

	for i := 0; i < len(s)-1; i++ {
		buf.MustWrite([]byte{s[i] & 0x7f})
	}
	buf.MustWrite([]byte{s[len(s)-1]&0x7f | 0x80})
}

// EncodeUnicode appends s as a stop-bit length prefix followed by its raw
// UTF-8 bytes.
func EncodeUnicode(buf *pool.ByteBuffer, s string) {
	EncodeUint(buf, uint64(len(s)))
	buf.MustWrite([]byte(s))
}

// EncodeByteVector appends b as a stop-bit length prefix followed by the raw
// bytes.
func EncodeByteVector(buf *pool.ByteBuffer, b []byte) {
	EncodeUint(buf, uint64(len(b)))
	buf.MustWrite(b)
}

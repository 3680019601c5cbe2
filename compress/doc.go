// Package compress provides the compression codecs used when packaging a
// capture file of encoded FAST messages for storage or transport.
//
// It has no effect on the FAST wire format itself: every byte the core
// encoder produces is untouched. compress only wraps the final concatenated
// capture payload written by cmd/fastcapture.
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Four algorithms are available, selected by format.CompressionType:
// None (no-op passthrough), Zstd (best ratio), S2 (balanced), and LZ4
// (fastest decompression). Use CreateCodec or GetCodec to obtain one.
package compress

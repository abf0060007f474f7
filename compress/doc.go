// Package compress provides the framed compression codecs used by arctic.
//
// Every codec in this package produces artifacts with a uniform outer shape,
// defined by the frame package:
//
//	[4 bytes, little-endian unsigned original length][N bytes payload]
//
// The header always carries the uncompressed length of the original buffer,
// so decompression can size its output exactly before invoking the native
// codec, and a result of any other length is rejected as corrupted input.
//
// # Architecture
//
// The package defines three core interfaces:
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
// # Codecs
//
// **LZ4 block** (format.CompressionLZ4, format.CompressionLZ4HC)
//
// The primary codec pair. Output buffers are sized from the worst-case bound
// reported by the native codec, compressed in a single bounded call, and
// truncated to the actual compressed size. The HC variant runs at the
// maximum supported compression level, trading CPU time for ratio; it
// produces smaller payloads under the exact same frame contract.
//
// **LZ4 frame** (format.CompressionLZ4Frame)
//
// The self-framing streaming variant. The payload embeds its own internal
// structure, which this package treats as opaque; the outer length header is
// still applied so block and streaming artifacts share one shape.
//
// **S2** (format.CompressionS2), **Zstandard** (format.CompressionZstd),
// **None** (format.CompressionNone)
//
// Additional codecs behind the same interface and frame contract. The zstd
// implementation switches between the pure Go and the cgo backed library at
// build time. None passes payloads through unchanged apart from the header,
// which keeps frames self-describing even when compression is disabled.
//
// # Thread safety
//
// All codecs are stateless values and safe for concurrent use. Mutable
// native state (hash tables, encoder windows) lives in sync.Pool entries
// owned by one goroutine at a time.
//
// # Errors
//
// Failures map onto the sentinels in the errs package: errs.ErrHeaderTooShort
// for artifacts shorter than the header, errs.ErrSizeMismatch for corrupted
// or truncated payloads, and errs.ErrCompressionFailed when a native codec
// rejects its input. All wrapped errors match with errors.Is.
package compress

// Package frame implements the outer framing shared by every compressed
// artifact produced by this module.
//
// A frame is a single contiguous byte sequence:
//
//	[4 bytes, little-endian unsigned original length][N bytes payload]
//
// The header carries the uncompressed length of the original buffer; the
// payload begins at offset 4 and runs to the end. There is no magic number,
// no version field and no checksum. Self-framing payloads (LZ4 frame, zstd)
// carry their own internal structure, which is opaque to this package.
package frame

import (
	"github.com/ahlmss/arctic/endian"
	"github.com/ahlmss/arctic/errs"
)

// HeaderSize is the fixed width of the length header in bytes.
const HeaderSize = 4

var engine = endian.GetLittleEndianEngine()

// AppendHeader appends the 4-byte little-endian length header for origLen
// to dst and returns the extended slice.
func AppendHeader(dst []byte, origLen uint32) []byte {
	return engine.AppendUint32(dst, origLen)
}

// PutHeader writes the length header for origLen into dst[0:HeaderSize].
// Panics if dst is shorter than HeaderSize.
func PutHeader(dst []byte, origLen uint32) {
	engine.PutUint32(dst, origLen)
}

// ReadHeader decodes the original length from the header at the start of b.
//
// Returns:
//   - uint32: Declared original (uncompressed) length
//   - error: errs.ErrHeaderTooShort if b holds fewer than HeaderSize bytes
func ReadHeader(b []byte) (uint32, error) {
	if len(b) < HeaderSize {
		return 0, errs.ErrHeaderTooShort
	}

	return engine.Uint32(b), nil
}

// Split decodes the header of b and returns the declared original length
// together with the payload that follows it. The payload aliases b; it is
// not copied.
func Split(b []byte) (uint32, []byte, error) {
	origLen, err := ReadHeader(b)
	if err != nil {
		return 0, nil, err
	}

	return origLen, b[HeaderSize:], nil
}

package compress

import (
	"fmt"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/frame"
)

// NoOpCompressor stores payloads uncompressed behind the standard frame
// header.
//
// Useful when the data is already compressed or incompressible, and as a
// baseline in benchmarks. Unlike a true pass-through the header is still
// applied, so artifacts stay uniform with every other codec in the registry.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a codec that frames data without compressing it.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress frames data without compressing it.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	dst := make([]byte, 0, frame.HeaderSize+len(data))
	dst = frame.AppendHeader(dst, uint32(len(data)))
	dst = append(dst, data...)

	return dst, nil
}

// Decompress returns a copy of the framed payload after verifying it matches
// the declared length.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	target, payload, err := frame.Split(data)
	if err != nil {
		return nil, err
	}

	if len(payload) != int(target) {
		return nil, fmt.Errorf("%w: declared %d bytes, payload holds %d", errs.ErrSizeMismatch, target, len(payload))
	}

	out := make([]byte, target)
	copy(out, payload)

	return out, nil
}

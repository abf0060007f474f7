package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/frame"
)

// S2Compressor is the S2 codec with length-prefix framing.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data into a framed S2 artifact.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	encoded := s2.Encode(nil, data)

	dst := make([]byte, 0, frame.HeaderSize+len(encoded))
	dst = frame.AppendHeader(dst, uint32(len(data)))
	dst = append(dst, encoded...)

	return dst, nil
}

// Decompress restores the original buffer from a framed S2 artifact.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	target, payload, err := frame.Split(data)
	if err != nil {
		return nil, err
	}

	decoded, err := s2.Decode(nil, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %s", errs.ErrSizeMismatch, err)
	}
	if len(decoded) != int(target) {
		return nil, fmt.Errorf("%w: declared %d bytes, decoded %d", errs.ErrSizeMismatch, target, len(decoded))
	}
	if decoded == nil {
		decoded = []byte{}
	}

	return decoded, nil
}

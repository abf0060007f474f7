//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/frame"
)

// Compress compresses data into a framed Zstandard artifact.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoded := gozstd.CompressLevel(nil, data, 3)

	dst := make([]byte, 0, frame.HeaderSize+len(encoded))
	dst = frame.AppendHeader(dst, uint32(len(data)))
	dst = append(dst, encoded...)

	return dst, nil
}

// Decompress restores the original buffer from a framed Zstandard artifact.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	target, payload, err := frame.Split(data)
	if err != nil {
		return nil, err
	}

	decoded, err := gozstd.Decompress(make([]byte, 0, target), payload)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %s", errs.ErrSizeMismatch, err)
	}
	if len(decoded) != int(target) {
		return nil, fmt.Errorf("%w: declared %d bytes, decoded %d", errs.ErrSizeMismatch, target, len(decoded))
	}

	return decoded, nil
}

//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/frame"
)

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation
// overhead; the library is designed to operate without allocations after a
// warmup when the encoder is retained.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			// Only reachable with invalid options.
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// zstdDecoderPool pools zstd decoders for reuse.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// Compress compresses data into a framed Zstandard artifact.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	// EncodeAll is stateless, safe with a pooled encoder.
	encoded := encoder.EncodeAll(data, nil)

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

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decoded, err := decoder.DecodeAll(payload, make([]byte, 0, target))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %s", errs.ErrSizeMismatch, err)
	}
	if len(decoded) != int(target) {
		return nil, fmt.Errorf("%w: declared %d bytes, decoded %d", errs.ErrSizeMismatch, target, len(decoded))
	}

	return decoded, nil
}

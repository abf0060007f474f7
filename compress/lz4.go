package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/format"
	"github.com/ahlmss/arctic/frame"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal hash table state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor is the bounded LZ4 block codec with length-prefix framing.
//
// The fast and high-compression variants share one implementation; only the
// native routine invoked for the payload differs. Framing is identical, so
// a frame written by either variant decompresses through the same path.
type LZ4Compressor struct {
	mode format.Mode
}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 block codec using the fast routine.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{mode: format.ModeFast}
}

// NewLZ4HCCompressor creates an LZ4 block codec using the high-compression
// routine at its maximum supported level.
func NewLZ4HCCompressor() LZ4Compressor {
	return LZ4Compressor{mode: format.ModeHighCompression}
}

// Compress compresses data into a framed LZ4 block artifact.
//
// The output buffer is sized as bound(len(data)) plus the header, where
// bound is the codec-reported worst-case compressed size, then truncated to
// the actual compressed length. An empty input yields the minimal valid
// frame: a zero header and no payload.
//
// Returns:
//   - []byte: Framed artifact, length >= frame.HeaderSize
//   - error: errs.ErrCompressionFailed if the native call fails or reports an invalid size
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	dst := make([]byte, frame.HeaderSize+bound)
	frame.PutHeader(dst, uint32(len(data)))

	if len(data) == 0 {
		return dst[:frame.HeaderSize], nil
	}

	var (
		n   int
		err error
	)
	if c.mode == format.ModeHighCompression {
		// Level9 is the maximum supported depth.
		n, err = lz4.CompressBlockHC(data, dst[frame.HeaderSize:], lz4.Level9, nil, nil)
	} else {
		lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
		n, err = lc.CompressBlock(data, dst[frame.HeaderSize:])
		lz4CompressorPool.Put(lc)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: lz4 block: %s", errs.ErrCompressionFailed, err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: lz4 block returned size %d", errs.ErrCompressionFailed, n)
	}

	return dst[:frame.HeaderSize+n], nil
}

// Decompress restores the original buffer from a framed LZ4 block artifact.
//
// The output is allocated at exactly the length declared in the header and
// the native call must fill it completely; any other outcome discards the
// partial output and fails.
//
// Returns:
//   - []byte: Original bytes, length equal to the declared length
//   - error: errs.ErrHeaderTooShort or errs.ErrSizeMismatch
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	target, payload, err := frame.Split(data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, target)
	if target == 0 && len(payload) == 0 {
		return out, nil
	}

	n, err := lz4.UncompressBlock(payload, out)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4 block: %s", errs.ErrSizeMismatch, err)
	}
	if n != int(target) {
		return nil, fmt.Errorf("%w: declared %d bytes, decoded %d", errs.ErrSizeMismatch, target, n)
	}

	return out, nil
}

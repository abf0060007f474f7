package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/frame"
	"github.com/ahlmss/arctic/internal/pool"
)

// lz4WriterPool pools lz4.Writer instances; the frame writer carries block
// buffers worth reusing across calls.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// LZ4FrameCompressor is the self-framing LZ4 frame codec.
//
// The payload is a complete LZ4 frame carrying its own internal structure,
// which this codec never decodes directly. The outer 4-byte length header is
// still applied, so frame artifacts share the block format's outer shape.
type LZ4FrameCompressor struct{}

var _ Codec = (*LZ4FrameCompressor)(nil)

// NewLZ4FrameCompressor creates a self-framing LZ4 frame codec.
func NewLZ4FrameCompressor() LZ4FrameCompressor {
	return LZ4FrameCompressor{}
}

// Compress compresses data into a length-prefixed LZ4 frame artifact.
//
// The native frame is assembled in pooled scratch and copied into a fresh
// result buffer behind the header; the scratch never escapes this call.
// On any native failure no partial artifact is returned.
func (c LZ4FrameCompressor) Compress(data []byte) ([]byte, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	zw, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(zw)
	zw.Reset(buf)

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("%w: lz4 frame: %s", errs.ErrCompressionFailed, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: lz4 frame: %s", errs.ErrCompressionFailed, err)
	}

	dst := make([]byte, 0, frame.HeaderSize+buf.Len())
	dst = frame.AppendHeader(dst, uint32(len(data)))
	dst = append(dst, buf.Bytes()...)

	return dst, nil
}

// Decompress restores the original buffer from a length-prefixed LZ4 frame
// artifact. The inner frame must decode to exactly the declared length.
func (c LZ4FrameCompressor) Decompress(data []byte) ([]byte, error) {
	target, payload, err := frame.Split(data)
	if err != nil {
		return nil, err
	}

	zr := lz4.NewReader(bytes.NewReader(payload))

	out := make([]byte, target)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, fmt.Errorf("%w: lz4 frame: %s", errs.ErrSizeMismatch, err)
	}

	// The frame must end exactly at the declared length: a clean EOF here
	// rules out both extra content and a truncated frame tail.
	var trailer [1]byte
	n, rerr := zr.Read(trailer[:])
	if n != 0 {
		return nil, fmt.Errorf("%w: frame decodes past declared %d bytes", errs.ErrSizeMismatch, target)
	}
	if rerr != io.EOF {
		return nil, fmt.Errorf("%w: lz4 frame: %s", errs.ErrSizeMismatch, rerr)
	}

	return out, nil
}

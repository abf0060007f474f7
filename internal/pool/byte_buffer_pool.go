// Package pool provides pooled scratch buffers for the compression codecs.
//
// Scratch obtained from a pool is owned by the goroutine that fetched it for
// the duration of a single unit of work and must be returned before the
// result is handed out. Data that escapes to a caller is always copied out
// of pooled storage first.
package pool

import (
	"io"
	"sync"
)

const (
	// FrameBufferDefaultSize is the initial capacity of buffers in the frame scratch pool.
	FrameBufferDefaultSize = 64 * 1024
	// FrameBufferMaxThreshold is the largest capacity retained by the frame scratch pool.
	FrameBufferMaxThreshold = 4 * 1024 * 1024
)

// ByteBuffer is a growable byte buffer that can be recycled through a
// ByteBufferPool. It implements io.Writer so codec writers can stream
// directly into it.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written so far.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while retaining its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffered bytes to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool.
//
// Buffers whose capacity grew beyond the configured threshold are dropped on
// Put instead of being retained, so one oversized payload does not pin its
// allocation for the lifetime of the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize initial
// capacity and retaining buffers up to maxThreshold capacity. A maxThreshold
// of 0 disables the retention limit.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var frameBufferPool = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)

// GetFrameBuffer retrieves a scratch buffer for assembling self-framing output.
func GetFrameBuffer() *ByteBuffer {
	return frameBufferPool.Get()
}

// PutFrameBuffer returns a frame scratch buffer to the pool.
func PutFrameBuffer(bb *ByteBuffer) {
	frameBufferPool.Put(bb)
}

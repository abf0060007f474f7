// Package arctic provides batch-capable LZ4 compression and decompression
// with a uniform self-describing framing format.
//
// Every artifact produced by this package is a frame: a 4-byte little-endian
// header carrying the original uncompressed length, followed by the
// compressed payload. The header lets decompression size its output exactly
// before touching the payload, and makes artifacts from the block and
// streaming formats interchangeable at the outer layer.
//
// # Basic Usage
//
// Compressing and decompressing a single buffer:
//
//	import "github.com/ahlmss/arctic"
//
//	artifact, err := arctic.Compress(data)
//	if err != nil {
//	    return err
//	}
//
//	original, err := arctic.Decompress(artifact)
//	if err != nil {
//	    return err
//	}
//
// CompressHC trades CPU time for a better ratio using the high-compression
// routine at its maximum level; its output decompresses through the same
// Decompress call.
//
// # Batch Operations
//
// Ordered collections of buffers are compressed and decompressed in parallel
// across a fixed worker pool, preserving submission order in the result:
//
//	frames, err := arctic.CompressBatch(bufs)
//	if err != nil {
//	    return err
//	}
//
//	restored, err := arctic.DecompressBatch(frames)
//	if err != nil {
//	    return err // errs.ErrBatchFailed: no partial results
//	}
//
// Batch decompression is all-or-nothing: one corrupt frame discards the
// whole batch. CompressFrameBatch is the documented exception; see its
// comment.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the compress
// and batch packages. For custom worker counts, alternate codecs or
// fine-grained control, use those packages directly.
package arctic

import (
	"github.com/ahlmss/arctic/batch"
	"github.com/ahlmss/arctic/compress"
	"github.com/ahlmss/arctic/format"
)

var (
	defaultBlockCodec   = compress.NewLZ4Compressor()
	defaultHCCodec      = compress.NewLZ4HCCompressor()
	defaultFrameCodec   = compress.NewLZ4FrameCompressor()
	defaultOrchestrator *batch.Orchestrator
)

func init() {
	o, err := batch.New()
	if err != nil {
		// Only reachable if the built-in codec registry is broken.
		panic(err)
	}
	defaultOrchestrator = o
}

// Compress compresses data with the fast LZ4 block routine and returns a
// framed artifact.
func Compress(data []byte) ([]byte, error) {
	return defaultBlockCodec.Compress(data)
}

// CompressHC compresses data with the LZ4 high-compression routine at its
// maximum level and returns a framed artifact.
func CompressHC(data []byte) ([]byte, error) {
	return defaultHCCodec.Compress(data)
}

// Decompress restores the original buffer from a framed LZ4 block artifact,
// whether it was produced by Compress or CompressHC.
func Decompress(artifact []byte) ([]byte, error) {
	return defaultBlockCodec.Decompress(artifact)
}

// CompressFrame compresses data into a length-prefixed self-framing LZ4
// frame artifact.
func CompressFrame(data []byte) ([]byte, error) {
	return defaultFrameCodec.Compress(data)
}

// DecompressFrame restores the original buffer from an artifact produced by
// CompressFrame.
func DecompressFrame(artifact []byte) ([]byte, error) {
	return defaultFrameCodec.Decompress(artifact)
}

// CompressBatch compresses an ordered collection of buffers in parallel with
// the fast LZ4 block routine. The result holds one framed artifact per input
// buffer, in submission order.
func CompressBatch(bufs [][]byte) ([][]byte, error) {
	return defaultOrchestrator.CompressBatch(bufs, format.ModeFast, format.FormatBlock)
}

// CompressBatchHC is CompressBatch using the high-compression routine.
func CompressBatchHC(bufs [][]byte) ([][]byte, error) {
	return defaultOrchestrator.CompressBatch(bufs, format.ModeHighCompression, format.FormatBlock)
}

// DecompressBatch decompresses an ordered collection of framed LZ4 block
// artifacts in parallel. The call is all-or-nothing: if any frame fails to
// decompress, no buffers are returned and the error matches
// errs.ErrBatchFailed.
func DecompressBatch(frames [][]byte) ([][]byte, error) {
	return defaultOrchestrator.DecompressBatch(frames)
}

// CompressFrameBatch compresses an ordered collection of buffers in parallel
// into self-framing LZ4 frame artifacts.
//
// Unlike CompressBatch, a per-item native failure does not fail the call:
// the failed item is omitted and the result may be shorter than the input,
// with no positional marker for dropped items.
func CompressFrameBatch(bufs [][]byte) ([][]byte, error) {
	return defaultOrchestrator.CompressBatch(bufs, format.ModeFast, format.FormatStreaming)
}

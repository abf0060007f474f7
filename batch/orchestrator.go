// Package batch fans single-buffer compression and decompression out across
// ordered collections.
//
// Work is statically partitioned: the index range is divided once into
// contiguous, roughly equal chunks, one per worker goroutine, with no
// runtime rebalancing. Each worker writes results into preallocated slots it
// owns exclusively, so slot writes need no locking, and output order always
// equals input order regardless of which worker finishes first. A batch call
// blocks the caller until every worker has joined; there is no cancellation
// or timeout, and failure is reported only after the join so the caller sees
// a single terminal outcome.
//
// Batch decompression is all-or-nothing: if any item fails, every produced
// buffer is discarded and the call returns errs.ErrBatchFailed. Streaming
// frame batch compression is the documented exception: items whose native
// compression fails are omitted from the result rather than failing the
// batch, so its output may be shorter than its input.
package batch

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ahlmss/arctic/compress"
	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/format"
	"github.com/ahlmss/arctic/internal/options"
)

// Orchestrator executes batch compression and decompression over a fixed
// pool of worker goroutines.
//
// The zero value is not usable; construct with New. An Orchestrator is
// immutable after construction and safe for concurrent use.
type Orchestrator struct {
	workers         int
	serialThreshold int
	blockCodec      compress.Codec
}

// Option configures an Orchestrator.
type Option = options.Option[*Orchestrator]

// WithWorkers sets the fixed number of worker goroutines per batch call.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return options.New(func(o *Orchestrator) error {
		if n < 1 {
			return fmt.Errorf("workers must be at least 1, got %d", n)
		}
		o.workers = n

		return nil
	})
}

// WithSerialThreshold sets the batch size at or below which items are
// processed inline on the calling goroutine instead of dispatching workers.
// The observable result is identical either way. A threshold of 0 always
// dispatches workers. Defaults to the worker count.
func WithSerialThreshold(n int) Option {
	return options.New(func(o *Orchestrator) error {
		if n < 0 {
			return fmt.Errorf("serial threshold must not be negative, got %d", n)
		}
		o.serialThreshold = n

		return nil
	})
}

// New creates an Orchestrator with the given options.
func New(opts ...Option) (*Orchestrator, error) {
	blockCodec, err := compress.GetCodec(format.CompressionLZ4)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		workers:         runtime.GOMAXPROCS(0),
		serialThreshold: -1,
		blockCodec:      blockCodec,
	}
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	return o, nil
}

// CompressBatch compresses bufs in submission order and returns one framed
// artifact per input buffer.
//
// For the block frame format a per-item failure fails the whole call. For
// the streaming frame format failed items are omitted and the result may be
// shorter than bufs; see the package documentation.
//
// An empty input returns an empty result with no work dispatched.
func (o *Orchestrator) CompressBatch(bufs [][]byte, mode format.Mode, frameFormat format.FrameFormat) ([][]byte, error) {
	codec, err := compress.Select(mode, frameFormat)
	if err != nil {
		return nil, err
	}

	return o.compressBatch(codec, bufs, frameFormat == format.FormatStreaming)
}

// compressBatch runs one compression per buffer over the worker pool.
// With omitFailed set, failed items are dropped from the result; otherwise
// the first per-item error fails the whole call.
func (o *Orchestrator) compressBatch(codec compress.Compressor, bufs [][]byte, omitFailed bool) ([][]byte, error) {
	n := len(bufs)
	if n == 0 {
		return [][]byte{}, nil
	}

	slots := make([][]byte, n)
	itemErrs := make([]error, n)

	o.run(n, func(start, end int) {
		for i := start; i < end; i++ {
			slots[i], itemErrs[i] = codec.Compress(bufs[i])
		}
	})

	if omitFailed {
		out := make([][]byte, 0, n)
		for i, artifact := range slots {
			if itemErrs[i] != nil {
				continue
			}
			out = append(out, artifact)
		}

		return out, nil
	}

	for _, err := range itemErrs {
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// DecompressBatch decompresses framed block artifacts in submission order.
//
// The call is all-or-nothing: any per-item mismatch sets a shared failure
// flag, and after the join every produced buffer is discarded and the call
// fails with errs.ErrBatchFailed. No per-item failure detail is retained.
//
// An empty input returns an empty result with no work dispatched.
func (o *Orchestrator) DecompressBatch(frames [][]byte) ([][]byte, error) {
	n := len(frames)
	if n == 0 {
		return [][]byte{}, nil
	}

	slots := make([][]byte, n)
	var failed atomic.Bool

	o.run(n, func(start, end int) {
		for i := start; i < end; i++ {
			out, err := o.blockCodec.Decompress(frames[i])
			if err != nil {
				failed.Store(true)
				continue
			}
			slots[i] = out
		}
	})

	if failed.Load() {
		return nil, fmt.Errorf("%w: %d frames submitted", errs.ErrBatchFailed, n)
	}

	return slots, nil
}

// run partitions the index range [0, n) into contiguous chunks and executes
// fn over each chunk, either inline for small batches or on one goroutine
// per worker. It returns after every chunk has completed.
func (o *Orchestrator) run(n int, fn func(start, end int)) {
	workers := o.workers
	if workers > n {
		workers = n
	}

	threshold := o.serialThreshold
	if threshold < 0 {
		threshold = o.workers
	}

	if workers == 1 || n <= threshold {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

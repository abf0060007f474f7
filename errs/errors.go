// Package errs defines the sentinel errors shared across the arctic packages.
//
// Callers branch on failure kind with errors.Is; call sites add context by
// wrapping the sentinel with fmt.Errorf and the %w verb.
package errs

import "errors"

var (
	// ErrHeaderTooShort indicates an artifact shorter than the 4-byte length header.
	ErrHeaderTooShort = errors.New("artifact shorter than length header")

	// ErrSizeMismatch indicates the decompressed length differs from the length
	// declared in the header, or the native codec reported an invalid result.
	// The input is treated as corrupted or truncated.
	ErrSizeMismatch = errors.New("decompressed size mismatch")

	// ErrCompressionFailed indicates the native codec rejected the input or
	// returned an invalid size during compression.
	ErrCompressionFailed = errors.New("native compression failed")

	// ErrBatchFailed indicates at least one item of a batch decompression
	// failed; the whole batch is discarded and no buffers are returned.
	ErrBatchFailed = errors.New("batch decompression failed")

	// ErrInvalidCompressionType indicates an unregistered compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)

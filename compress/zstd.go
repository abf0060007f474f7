package compress

// ZstdCompressor is the Zstandard codec with length-prefix framing.
//
// Two backends share this type: a pure Go implementation and a cgo binding
// to the reference library, selected at build time. Both produce artifacts
// with the identical outer frame, so data written by one backend reads back
// through the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

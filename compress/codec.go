package compress

import (
	"fmt"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/format"
)

// Compressor compresses a single byte buffer into a framed artifact.
//
// The input is borrowed read-only for the duration of the call and never
// retained. The returned slice is newly allocated and owned by the caller.
type Compressor interface {
	// Compress compresses data and returns a framed artifact whose 4-byte
	// header records len(data). An empty input is legal and yields a
	// minimal valid frame.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores the original buffer from a framed artifact.
//
// Implementations size the output from the length header and reject any
// native result that does not decode to exactly that many bytes; a partial
// or truncated buffer is never returned.
type Decompressor interface {
	// Decompress decompresses a framed artifact and returns the original
	// bytes. The returned slice is newly allocated and owned by the caller.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, LZ4, LZ4HC, LZ4Frame, S2, or Zstd)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidCompressionType for unregistered types
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionLZ4HC:
		return NewLZ4HCCompressor(), nil
	case format.CompressionLZ4Frame:
		return NewLZ4FrameCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s for %s", errs.ErrInvalidCompressionType, compressionType, target)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:     NewNoOpCompressor(),
	format.CompressionLZ4:      NewLZ4Compressor(),
	format.CompressionLZ4HC:    NewLZ4HCCompressor(),
	format.CompressionLZ4Frame: NewLZ4FrameCompressor(),
	format.CompressionS2:       NewS2Compressor(),
	format.CompressionZstd:     NewZstdCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}

// Select resolves the codec for a mode and frame format combination.
//
// The streaming format always uses the self-framing LZ4 frame codec; the
// block format picks the fast or high-compression block codec per mode.
func Select(mode format.Mode, frameFormat format.FrameFormat) (Codec, error) {
	switch frameFormat {
	case format.FormatStreaming:
		return GetCodec(format.CompressionLZ4Frame)
	case format.FormatBlock:
		if mode == format.ModeHighCompression {
			return GetCodec(format.CompressionLZ4HC)
		}

		return GetCodec(format.CompressionLZ4)
	default:
		return nil, fmt.Errorf("%w: frame format %s", errs.ErrInvalidCompressionType, frameFormat)
	}
}

package compress

import (
	"testing"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/format"
	"github.com/ahlmss/arctic/frame"
	"github.com/stretchr/testify/require"
)

var registryTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionLZ4,
	format.CompressionLZ4HC,
	format.CompressionLZ4Frame,
	format.CompressionS2,
	format.CompressionZstd,
}

func TestGetCodec(t *testing.T) {
	for _, ct := range registryTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}
}

func TestGetCodec_Invalid(t *testing.T) {
	codec, err := GetCodec(format.CompressionType(0xFF))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
	require.Nil(t, codec)
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range registryTypes {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	codec, err := CreateCodec(format.CompressionType(0x7F), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
	require.Contains(t, err.Error(), "payload")
	require.Nil(t, codec)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name        string
		mode        format.Mode
		frameFormat format.FrameFormat
		expected    Codec
	}{
		{
			name:        "fast block",
			mode:        format.ModeFast,
			frameFormat: format.FormatBlock,
			expected:    NewLZ4Compressor(),
		},
		{
			name:        "hc block",
			mode:        format.ModeHighCompression,
			frameFormat: format.FormatBlock,
			expected:    NewLZ4HCCompressor(),
		},
		{
			name:        "streaming ignores mode",
			mode:        format.ModeHighCompression,
			frameFormat: format.FormatStreaming,
			expected:    NewLZ4FrameCompressor(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := Select(tt.mode, tt.frameFormat)
			require.NoError(t, err)
			require.Equal(t, tt.expected, codec)
		})
	}
}

func TestSelect_InvalidFormat(t *testing.T) {
	_, err := Select(format.ModeFast, format.FrameFormat(0xFF))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

// Every registry codec must produce the identical outer frame shape:
// a 4-byte little-endian original length followed by the payload.
func TestRegistryCodecs_UniformFraming(t *testing.T) {
	payloads := map[string][]byte{
		"empty":          {},
		"short":          []byte("hello world"),
		"compressible":   generateTestData(16*1024, "compressible"),
		"incompressible": generateTestData(4*1024, "incompressible"),
	}

	for _, ct := range registryTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for payloadName, data := range payloads {
			t.Run(ct.String()+"/"+payloadName, func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				origLen, _, err := frame.Split(compressed)
				require.NoError(t, err)
				require.Equal(t, uint32(len(data)), origLen)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, decompressed)
			})
		}
	}
}

func TestRegistryCodecs_RejectTooShort(t *testing.T) {
	for _, ct := range registryTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			_, err := codec.Decompress([]byte{0x01})
			require.ErrorIs(t, err, errs.ErrHeaderTooShort)
		})
	}
}

func TestCodec_Interfaces(t *testing.T) {
	require.Implements(t, (*Compressor)(nil), NewLZ4Compressor())
	require.Implements(t, (*Decompressor)(nil), NewLZ4Compressor())
	require.Implements(t, (*Codec)(nil), NewLZ4FrameCompressor())
	require.Implements(t, (*Codec)(nil), NewNoOpCompressor())
	require.Implements(t, (*Codec)(nil), NewS2Compressor())
	require.Implements(t, (*Codec)(nil), NewZstdCompressor())
}

func TestNoOpCompressor_SizeMismatch(t *testing.T) {
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress([]byte("hello world"))
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed[:len(compressed)-1])
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
	require.Nil(t, decompressed)
}

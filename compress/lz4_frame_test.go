package compress

import (
	"testing"

	"github.com/ahlmss/arctic/errs"
	"github.com/ahlmss/arctic/frame"
	"github.com/stretchr/testify/require"
)

func TestLZ4FrameCompressor_RoundTrip(t *testing.T) {
	codec := NewLZ4FrameCompressor()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "empty buffer",
			data: []byte{},
		},
		{
			name: "hello world",
			data: []byte("hello world"),
		},
		{
			name: "repetitive payload",
			data: generateTestData(64*1024, "compressible"),
		},
		{
			name: "incompressible payload",
			data: generateTestData(8*1024, "incompressible"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := codec.Compress(tt.data)
			require.NoError(t, err)

			origLen, err := frame.ReadHeader(compressed)
			require.NoError(t, err)
			require.Equal(t, uint32(len(tt.data)), origLen)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, tt.data, decompressed)
		})
	}
}

func TestLZ4FrameCompressor_PayloadIsSelfFraming(t *testing.T) {
	codec := NewLZ4FrameCompressor()

	compressed, err := codec.Compress([]byte("hello world"))
	require.NoError(t, err)

	_, payload, err := frame.Split(compressed)
	require.NoError(t, err)

	// LZ4 frame magic number: 0x184D2204, little-endian.
	require.GreaterOrEqual(t, len(payload), 4)
	require.Equal(t, []byte{0x04, 0x22, 0x4d, 0x18}, payload[:4])
}

func TestLZ4FrameCompressor_Decompress_HeaderTooShort(t *testing.T) {
	codec := NewLZ4FrameCompressor()

	_, err := codec.Decompress([]byte{0x01, 0x02})
	require.ErrorIs(t, err, errs.ErrHeaderTooShort)
}

func TestLZ4FrameCompressor_Decompress_TruncatedPayload(t *testing.T) {
	codec := NewLZ4FrameCompressor()

	compressed, err := codec.Compress(generateTestData(16*1024, "compressible"))
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed[:len(compressed)-1])
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
	require.Nil(t, decompressed)
}

func TestLZ4FrameCompressor_Decompress_UnderDeclaredLength(t *testing.T) {
	codec := NewLZ4FrameCompressor()

	compressed, err := codec.Compress([]byte("hello world"))
	require.NoError(t, err)

	// Declare fewer bytes than the inner frame actually decodes to.
	frame.PutHeader(compressed, 5)
	decompressed, err := codec.Decompress(compressed)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
	require.Nil(t, decompressed)
}

func TestLZ4FrameCompressor_Deterministic(t *testing.T) {
	codec := NewLZ4FrameCompressor()
	data := generateTestData(8*1024, "compressible")

	first, err := codec.Compress(data)
	require.NoError(t, err)

	second, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

package compress

import (
	"fmt"
	"testing"

	"github.com/ahlmss/arctic/format"
)

// generateTestData creates payloads with a controlled compressibility tier.
func generateTestData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// All zeros - maximum compression
		// data already initialized to zeros
	case "compressible":
		// Repeated pattern - good compression
		pattern := []byte("ticker=VOD.L bid=132.25 ask=132.45 volume=18572 ")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	case "semi_compressible":
		for i := range data {
			if i%100 < 50 {
				data[i] = byte(i % 256)
			} else {
				data[i] = byte((i*7 + i*i) % 256)
			}
		}
	default:
		// Default to incompressible
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

func benchmarkCompress(b *testing.B, ct format.CompressionType) {
	codec, err := GetCodec(ct)
	if err != nil {
		b.Fatal(err)
	}

	benchSizes := []int{1024, 16384, 262144} // 1KB, 16KB, 256KB

	for _, size := range benchSizes {
		data := generateTestData(size, "compressible")

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchmarkDecompress(b *testing.B, ct format.CompressionType) {
	codec, err := GetCodec(ct)
	if err != nil {
		b.Fatal(err)
	}

	benchSizes := []int{1024, 16384, 262144}

	for _, size := range benchSizes {
		compressed, err := codec.Compress(generateTestData(size, "compressible"))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLZ4Compressor_Compress(b *testing.B) {
	benchmarkCompress(b, format.CompressionLZ4)
}

func BenchmarkLZ4Compressor_Decompress(b *testing.B) {
	benchmarkDecompress(b, format.CompressionLZ4)
}

func BenchmarkLZ4HCCompressor_Compress(b *testing.B) {
	benchmarkCompress(b, format.CompressionLZ4HC)
}

func BenchmarkLZ4FrameCompressor_Compress(b *testing.B) {
	benchmarkCompress(b, format.CompressionLZ4Frame)
}

func BenchmarkLZ4FrameCompressor_Decompress(b *testing.B) {
	benchmarkDecompress(b, format.CompressionLZ4Frame)
}

func BenchmarkS2Compressor_Compress(b *testing.B) {
	benchmarkCompress(b, format.CompressionS2)
}

func BenchmarkZstdCompressor_Compress(b *testing.B) {
	benchmarkCompress(b, format.CompressionZstd)
}

package format

type (
	// CompressionType identifies a registered codec implementation.
	CompressionType uint8
	// Mode selects the block compression routine: fast or high-compression.
	Mode uint8
	// FrameFormat selects the payload layout inside the outer length-prefixed frame.
	FrameFormat uint8
)

const (
	CompressionNone     CompressionType = 0x1 // CompressionNone represents framed pass-through, no compression.
	CompressionLZ4      CompressionType = 0x2 // CompressionLZ4 represents fast LZ4 block compression.
	CompressionLZ4HC    CompressionType = 0x3 // CompressionLZ4HC represents high-compression LZ4 block compression.
	CompressionLZ4Frame CompressionType = 0x4 // CompressionLZ4Frame represents self-framing LZ4 frame compression.
	CompressionS2       CompressionType = 0x5 // CompressionS2 represents S2 compression.
	CompressionZstd     CompressionType = 0x6 // CompressionZstd represents Zstandard compression.

	ModeFast            Mode = 0x1 // ModeFast selects the default fast block routine.
	ModeHighCompression Mode = 0x2 // ModeHighCompression selects the HC routine at its maximum level.

	FormatBlock     FrameFormat = 0x1 // FormatBlock stores a bounded LZ4 block payload.
	FormatStreaming FrameFormat = 0x2 // FormatStreaming stores a self-framing LZ4 frame payload.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionLZ4HC:
		return "LZ4HC"
	case CompressionLZ4Frame:
		return "LZ4Frame"
	case CompressionS2:
		return "S2"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "Fast"
	case ModeHighCompression:
		return "HighCompression"
	default:
		return "Unknown"
	}
}

func (f FrameFormat) String() string {
	switch f {
	case FormatBlock:
		return "Block"
	case FormatStreaming:
		return "Streaming"
	default:
		return "Unknown"
	}
}

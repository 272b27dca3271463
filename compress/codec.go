// Package compress provides the payload codecs used by the snapshot blob
// format.
//
// Snapshot payloads are small (tens of bytes per category entry), so the
// codecs favor simple one-shot block APIs with pooled encoder/decoder state
// where the underlying library rewards reuse. The codec for a given snapshot
// is recorded in its header as a format.CompressionType.
package compress

import (
	"fmt"

	"github.com/survlab/survfit/format"
)

// Compressor compresses a snapshot payload.
//
// The returned slice is newly allocated and owned by the caller unless the
// implementation documents otherwise (NoOpCompressor returns the input
// as-is); the input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a snapshot payload compressed with the matching
// algorithm. It returns an error for corrupted data or data produced by an
// incompatible codec.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All codecs in this package are stateless
// values safe for concurrent use; shared scratch state lives in sync.Pools.
type Codec interface {
	Compressor
	Decompressor
}

// NewCodec returns the codec for a compression type.
func NewCodec(c format.CompressionType) (Codec, error) {
	switch c {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %d", uint8(c))
	}
}

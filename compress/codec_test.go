package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/survlab/survfit/format"
)

func testPayloads() map[string][]byte {
	incremental := make([]byte, 1024)
	for i := range incremental {
		incremental[i] = byte(i)
	}

	return map[string][]byte{
		"empty":       {},
		"tiny":        []byte("x"),
		"text":        []byte("category fit snapshot payload, category fit snapshot payload"),
		"binary":      {0x00, 0xFF, 0x10, 0x20, 0x00, 0x00, 0x00, 0x7F, 0x80, 0x01},
		"repetitive":  bytes.Repeat([]byte{0xAB}, 4096),
		"incremental": incremental,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			for payloadName, payload := range testPayloads() {
				t.Run(payloadName, func(t *testing.T) {
					compressed, err := codec.Compress(payload)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					// Codecs return nil for empty input; nil and empty are
					// interchangeable for payload bytes.
					require.True(t, bytes.Equal(payload, decompressed),
						"round trip mismatch: want %d bytes, got %d", len(payload), len(decompressed))
				})
			}
		})
	}
}

func TestCodec_CompressesRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte("survfit"), 1024)

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestDecompress_CorruptedData(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNewCodec(t *testing.T) {
	tests := []struct {
		compression format.CompressionType
		wantErr     bool
	}{
		{format.CompressionNone, false},
		{format.CompressionZstd, false},
		{format.CompressionS2, false},
		{format.CompressionLZ4, false},
		{format.CompressionType(0x00), true},
		{format.CompressionType(0xFF), true},
	}

	for _, tt := range tests {
		codec, err := NewCodec(tt.compression)
		if tt.wantErr {
			require.Error(t, err)
			require.Nil(t, codec)
		} else {
			require.NoError(t, err)
			require.NotNil(t, codec)
		}
	}
}

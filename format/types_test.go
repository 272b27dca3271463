package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		compression CompressionType
		want        string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0x0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.compression.String())
	}
}

func TestCompressionType_Valid(t *testing.T) {
	require.True(t, CompressionNone.Valid())
	require.True(t, CompressionZstd.Valid())
	require.True(t, CompressionS2.Valid())
	require.True(t, CompressionLZ4.Valid())
	require.False(t, CompressionType(0x0).Valid())
	require.False(t, CompressionType(0x5).Valid())
}

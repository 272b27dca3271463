package blob

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/survlab/survfit/curve"
	"github.com/survlab/survfit/errs"
	"github.com/survlab/survfit/fit"
	"github.com/survlab/survfit/format"
)

func testTable(t *testing.T) *fit.Table {
	t.Helper()

	table := fit.NewTable()

	specs := []struct {
		label string
		typ   curve.Type
		k     float64
		alpha float64
		wrms  float64
	}{
		{"alpha", curve.Logistic, 3.25, 0.45, 0.0125},
		{"beta", curve.Tanh, -1.5, 1.0, 0.25},
		{"gamma", curve.Gudermannian, 0.367, 0.45, 0.0},
	}
	for _, s := range specs {
		result, err := fit.NewResult(s.typ, fit.Params{K: s.k, Alpha: s.alpha}, s.wrms)
		require.NoError(t, err)
		table.Set(s.label, result)
	}

	return table
}

func requireTablesEqual(t *testing.T, want, got *fit.Table) {
	t.Helper()

	require.Equal(t, want.Categories(), got.Categories())
	for label, wr := range want.Results() {
		gr, ok := got.Get(label)
		require.True(t, ok)
		require.Equal(t, wr.Type, gr.Type)
		require.Equal(t, wr.Params, gr.Params)
		require.Equal(t, wr.WRMSError, gr.WRMSError)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	table := testTable(t)
	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			enc, err := NewEncoder(WithCompression(compression))
			require.NoError(t, err)

			data, err := enc.Encode(table)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(data), HeaderSize)

			decoded, err := Decode(data)
			require.NoError(t, err)
			requireTablesEqual(t, table, decoded)
		})
	}
}

// TestSnapshot_Deterministic encodes the same table twice and requires
// byte-identical output; entries are written in sorted label order.
func TestSnapshot_Deterministic(t *testing.T) {
	table := testTable(t)

	enc, err := NewEncoder()
	require.NoError(t, err)

	first, err := enc.Encode(table)
	require.NoError(t, err)
	second, err := enc.Encode(table)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSnapshot_EmptyTable(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	data, err := enc.Encode(fit.NewTable())
	require.NoError(t, err)
	require.Len(t, data, HeaderSize)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Zero(t, decoded.Len())
}

func TestNewEncoder_InvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0xFF)))
	require.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	valid, err := enc.Encode(testTable(t))
	require.NoError(t, err)

	t.Run("short data", func(t *testing.T) {
		_, err := Decode(valid[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[0] ^= 0xFF
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("bad version", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[2] = Version + 1
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("payload length mismatch", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		_, err := Decode(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[HeaderSize] ^= 0xFF
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("category id mismatch", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		// Flip a bit in the first entry's category ID and re-patch the CRC so
		// the corruption survives the checksum gate.
		data[HeaderSize] ^= 0x01
		patchChecksum(data)
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrCategoryMismatch)
	})

	t.Run("unknown curve type", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		// First entry is "alpha": type byte sits after the category ID, the
		// label length, and the label itself.
		typeOffset := HeaderSize + 8 + 2 + len("alpha")
		data[typeOffset] = 0xEE
		patchChecksum(data)
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrUnknownCurve)
	})
}

// patchChecksum recomputes the header CRC over the stored payload, for tests
// that corrupt payload bytes deliberately.
func patchChecksum(data []byte) {
	sum := crc32.ChecksumIEEE(data[HeaderSize:])
	engine.PutUint32(data[8:12], sum)
}

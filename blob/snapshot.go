package blob

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/survlab/survfit/compress"
	"github.com/survlab/survfit/curve"
	"github.com/survlab/survfit/endian"
	"github.com/survlab/survfit/errs"
	"github.com/survlab/survfit/fit"
	"github.com/survlab/survfit/format"
	"github.com/survlab/survfit/internal/hash"
	"github.com/survlab/survfit/internal/options"
)

const (
	// Magic identifies a survfit snapshot.
	Magic uint16 = 0xECF1
	// Version is the current snapshot format version.
	Version uint8 = 1
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 16

	// entryFixedSize is the per-entry payload size excluding the label:
	// category ID (8) + label length (2) + curve type (1) + three float64 (24).
	entryFixedSize = 8 + 2 + 1 + 24
)

var engine = endian.GetLittleEndianEngine()

// Encoder serializes fit tables into snapshots.
type Encoder struct {
	compression format.CompressionType
}

// Option is a functional option for the Encoder.
type Option = options.Option[*Encoder]

// WithCompression selects the payload compression algorithm. The default is
// no compression; snapshot payloads are small and decode-latency sensitive.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		if !c.Valid() {
			return fmt.Errorf("unsupported compression type: %d", uint8(c))
		}
		e.compression = c

		return nil
	})
}

// NewEncoder creates a snapshot encoder.
func NewEncoder(opts ...Option) (*Encoder, error) {
	enc := &Encoder{compression: format.CompressionNone}
	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// Encode serializes the table into a snapshot.
//
// Entries are written in sorted label order, so the same table always encodes
// to the same bytes.
func (e *Encoder) Encode(table *fit.Table) ([]byte, error) {
	results := table.Results()
	labels := table.Categories()

	payload := make([]byte, 0, len(labels)*(entryFixedSize+16))
	for _, label := range labels {
		if len(label) > math.MaxUint16 {
			return nil, fmt.Errorf("category label too long: %d bytes", len(label))
		}
		r := results[label]

		payload = engine.AppendUint64(payload, hash.CategoryID(label))
		payload = engine.AppendUint16(payload, uint16(len(label)))
		payload = append(payload, label...)
		payload = append(payload, byte(r.Type))
		payload = engine.AppendUint64(payload, math.Float64bits(r.Params.K))
		payload = engine.AppendUint64(payload, math.Float64bits(r.Params.Alpha))
		payload = engine.AppendUint64(payload, math.Float64bits(r.WRMSError))
	}

	codec, err := compress.NewCodec(e.compression)
	if err != nil {
		return nil, err
	}
	stored, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	buf := make([]byte, 0, HeaderSize+len(stored))
	buf = engine.AppendUint16(buf, Magic)
	buf = append(buf, Version, byte(e.compression))
	buf = engine.AppendUint32(buf, uint32(len(labels)))
	buf = engine.AppendUint32(buf, crc32.ChecksumIEEE(stored))
	buf = engine.AppendUint32(buf, uint32(len(stored)))
	buf = append(buf, stored...)

	return buf, nil
}

// Decode parses a snapshot back into a fit table.
//
// The payload checksum is verified before decompression, and every entry's
// category ID is recomputed from its label; any mismatch fails the decode.
func Decode(data []byte) (*fit.Table, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	if engine.Uint16(data[0:2]) != Magic || data[2] != Version {
		return nil, errs.ErrInvalidMagic
	}

	compression := format.CompressionType(data[3])
	entryCount := engine.Uint32(data[4:8])
	checksum := engine.Uint32(data[8:12])
	storedLen := engine.Uint32(data[12:16])

	if uint32(len(data)-HeaderSize) != storedLen {
		return nil, fmt.Errorf("%w: header claims %d payload bytes, got %d",
			errs.ErrInvalidPayload, storedLen, len(data)-HeaderSize)
	}

	stored := data[HeaderSize:]
	if crc32.ChecksumIEEE(stored) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.NewCodec(compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot payload: %w", err)
	}

	table := fit.NewTable()
	offset := 0
	for i := uint32(0); i < entryCount; i++ {
		if len(payload)-offset < entryFixedSize {
			return nil, fmt.Errorf("%w: truncated entry %d", errs.ErrInvalidPayload, i)
		}

		categoryID := engine.Uint64(payload[offset : offset+8])
		labelLen := int(engine.Uint16(payload[offset+8 : offset+10]))
		offset += 10

		if len(payload)-offset < labelLen+entryFixedSize-10 {
			return nil, fmt.Errorf("%w: truncated label in entry %d", errs.ErrInvalidPayload, i)
		}
		label := string(payload[offset : offset+labelLen])
		offset += labelLen

		if hash.CategoryID(label) != categoryID {
			return nil, fmt.Errorf("%w: entry %d label %q", errs.ErrCategoryMismatch, i, label)
		}

		curveType := curve.Type(payload[offset])
		offset++

		k := math.Float64frombits(engine.Uint64(payload[offset : offset+8]))
		alpha := math.Float64frombits(engine.Uint64(payload[offset+8 : offset+16]))
		wrms := math.Float64frombits(engine.Uint64(payload[offset+16 : offset+24]))
		offset += 24

		result, err := fit.NewResult(curveType, fit.Params{K: k, Alpha: alpha}, wrms)
		if err != nil {
			return nil, fmt.Errorf("entry %d label %q: %w", i, label, err)
		}
		table.Set(label, result)
	}

	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidPayload, len(payload)-offset)
	}

	return table, nil
}

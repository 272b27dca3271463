// Package blob encodes fitted category tables into compact self-describing
// binary snapshots and decodes them back.
//
// A batch's output (category label, winning curve, fitted parameters,
// weighted RMS error) is the sole externally visible state of the fitting
// core; snapshots make that state durable so downstream consumers can reload
// it without refitting.
//
// # Snapshot Layout
//
// A snapshot is a fixed 16-byte little-endian header followed by an
// optionally compressed payload:
//
//	offset 0-1   magic (0xECF1)
//	offset 2     format version (1)
//	offset 3     compression type (format.CompressionType)
//	offset 4-7   entry count
//	offset 8-11  CRC32 (IEEE) of the stored payload
//	offset 12-15 stored payload length in bytes
//
// Each payload entry holds the xxHash64 category ID, the label, the curve
// type, and the (k, alpha, wrmsError) triple as raw float64 bits. Entries are
// written in sorted label order, so encoding the same table twice yields
// byte-identical snapshots. Decoders verify the payload checksum and recompute
// every category ID from its label.
package blob

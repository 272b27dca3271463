// Package endian provides byte order utilities for the snapshot blob codec.
//
// It combines the ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single EndianEngine interface so the blob encoder can both write into
// fixed header slots and append variable-length payload entries through one
// value. Snapshot blobs are always little-endian on the wire; the big-endian
// engine exists for tests and interoperability checks.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy this interface, so an
// EndianEngine is immutable, stateless and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. This is the wire
// order for snapshot blobs.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

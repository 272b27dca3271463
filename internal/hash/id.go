package hash

import "github.com/cespare/xxhash/v2"

// CategoryID computes the xxHash64 of a category label.
//
// Snapshot blobs store this ID alongside the label so decoders can verify
// entry integrity without re-reading the whole payload.
func CategoryID(label string) uint64 {
	return xxhash.Sum64String(label)
}

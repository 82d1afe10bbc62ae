// Package signature computes 64-bit fingerprints of whole configurations.
//
// Signatures are the history keys of cycle detection and the memo keys of
// searches whose natural state is too large to use directly. Two values
// with equal signatures are treated as identical; at 64 bits the collision
// probability is negligible for puzzle-sized state spaces.
//
//	Of(v)       structural hash of any value (hashstructure, FormatV2)
//	Bytes(b)    xxhash of a byte slice
//	String(s)   xxhash of a string
//	Rows(rows)  xxhash of a grid, row boundaries included
package signature

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Of returns a structural hash of v. Structs, slices, maps, arrays and
// scalars are supported; channels and funcs are not and yield an error.
// Map iteration order does not affect the result. Unexported struct fields
// are ignored, so configurations hashed with Of must export their state.
func Of(v any) (uint64, error) {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("signature: hash %T: %w", v, err)
	}
	return h, nil
}

// Bytes returns the xxhash of b.
func Bytes(b []byte) uint64 { return xxhash.Sum64(b) }

// String returns the xxhash of s.
func String(s string) uint64 { return xxhash.Sum64String(s) }

// Rows hashes a grid row by row. Each row is prefixed with its length, so
// a 2×3 and a 3×2 grid with the same cells hash differently whatever bytes
// the cells hold.
func Rows(rows [][]byte) uint64 {
	d := xxhash.New()
	var n [binary.MaxVarintLen64]byte
	for _, r := range rows {
		_, _ = d.Write(binary.AppendUvarint(n[:0], uint64(len(r))))
		_, _ = d.Write(r)
	}
	return d.Sum64()
}

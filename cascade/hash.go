package cascade

import (
	"encoding/binary"

	"github.com/dolthub/maphash"
	"github.com/zeebo/blake3"
)

// HashFunc maps a key to a 64 bit hash value. A table calls it exactly once
// per operation and reduces the result modulo each layer's capacity.
type HashFunc func(key string) uint64

// RuntimeHash returns the Go runtime's string hash with a fresh random seed.
// It is fast, but bucket positions differ between processes.
func RuntimeHash() HashFunc {
	h := maphash.NewHasher[string]()
	return h.Hash
}

// StableHash hashes keys with BLAKE3. Bucket positions, and therefore layer
// statistics, are reproducible across processes and machines.
func StableHash(key string) uint64 {
	sum := blake3.Sum256([]byte(key))
	return binary.LittleEndian.Uint64(sum[:8])
}

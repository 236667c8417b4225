// Package hash includes all hashing utilities used for consensus
// critical operations.
package hash

import (
	"hash"

	"github.com/minio/sha256-simd"
)

// Hash defines a function that returns the sha256 checksum of the data passed in.
// https://github.com/ethereum/consensus-specs/blob/master/specs/phase0/beacon-chain.md#hash
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// CustomSHA256Hasher returns a hash function that uses an enclosed hasher.
// This is not thread safe as the hasher is shared between calls, however
// it is much more efficient in the case of many calls from a single thread.
func CustomSHA256Hasher() func([]byte) [32]byte {
	hasher := sha256.New()
	var h [32]byte

	return func(data []byte) [32]byte {
		hasher.Reset()
		hasher.Write(data)
		hasher.Sum(h[:0])

		return h
	}
}

// New returns a raw sha256 hasher for callers that stream data in chunks.
func New() hash.Hash {
	return sha256.New()
}

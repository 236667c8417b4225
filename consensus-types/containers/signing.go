package containers

import (
	ssz "github.com/ferranbt/fastssz"
)

// SigningData binds an object root to the domain it is signed under.
type SigningData struct {
	ObjectRoot [32]byte
	Domain     [32]byte
}

// HashTreeRoot ssz hashes the SigningData object.
func (s *SigningData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SigningData object with a hasher.
func (s *SigningData) HashTreeRootWith(hh *ssz.Hasher) error {
	idx := hh.Index()

	// Field (0) 'ObjectRoot'
	hh.PutBytes(s.ObjectRoot[:])

	// Field (1) 'Domain'
	hh.PutBytes(s.Domain[:])

	hh.Merkleize(idx)
	return nil
}
